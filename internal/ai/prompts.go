package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	ExtractJob    string
	ExtractResume string
	Advise        string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	ExtractJob    string
	ExtractResume string
	Advise        string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	ExtractJob: `You are an assistant that extracts structured information from job descriptions for software and data roles. Always respond with a single JSON object and nothing else. No extra commentary, no markdown fences.`,

	ExtractResume: `You are an assistant that extracts structured information from a candidate's resume. Always respond with a single JSON object and nothing else. No extra commentary, no markdown fences.
Only put concrete technologies, skills, and CS topics in skills and tools.
If you see vague traits like "hard-working", "problem solver", or "fast-paced environment", put those in a separate soft_traits list.`,

	Advise: `You are an expert technical recruiter and career coach for early-career software engineers and data people.
You evaluate candidates holistically: responsibilities, tech stack, soft skills, and trajectory.
You ignore generic boilerplate like "About the company", benefits, EEO statements, and marketing fluff.
Always respond with a single JSON object and nothing else.`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	ExtractJob: `Extract the following fields from this job description:

- title (string)
- company (string or empty string if not obvious)
- location (string or 'Remote' if clearly remote, otherwise empty string if unknown)
- requiredSkills (list of core skills/technologies that seem REQUIRED)
- niceToHaveSkills (list of skills labelled as preferred/plus/nice-to-have; do not duplicate requiredSkills)
- responsibilities (3-10 bullet-style strings summarizing duties)
- keywords (8-20 important technical or domain keywords from the posting)

Very important constraints:

- Only extract skills that a candidate would realistically list on a resume or skills section.
  Do NOT treat soft phrases like "ability to work in a fast-paced environment", "strong work ethic",
  or "excellent communication skills" as separate skills unless they would actually appear as
  bullet points or items in a real resume.
- Ignore generic company marketing fluff and "About us" style paragraphs. Focus on the technical
  stack, core responsibilities, and core knowledge areas.
- If the posting contains a long wall of text, be selective: focus on the sections that clearly
  list requirements, preferred qualifications, or responsibilities.

Return JSON in this exact schema:

{
  "title": "",
  "company": "",
  "location": "",
  "requiredSkills": [],
  "niceToHaveSkills": [],
  "responsibilities": [],
  "keywords": []
}

Job description:
-----
%s
-----`,

	ExtractResume: `From this resume text, extract:

- name (best guess of the candidate's name; empty string if not obvious)
- headline (1 short phrase like 'CS student', 'Software Engineer intern', etc.)
- skills (list of skills/technologies the candidate claims)
- tools (list of tools/platforms/frameworks they use)

Return JSON in this exact schema:

{
  "name": "",
  "headline": "",
  "skills": [],
  "tools": []
}

Resume text:
-----
%s
-----`,

	Advise: `Job description (parsed record):
%s

Resume (parsed record):
%s

Full job description text (may contain extra fluff - IGNORE boilerplate):
-----
%s
-----

Full resume text:
-----
%s
-----

Using a holistic view (not just exact word matches), do ALL of the following:

1. Decide how strong a fit the candidate is for THIS SPECIFIC ROLE, on a scale 0-100.
   Consider responsibilities, required skills, and level of experience.

2. Write a brief, tailored summary that a recruiter could paste into a note,
   explaining why the candidate is or is not a strong fit.

3. Propose 2-4 improved resume bullet points that the candidate could use
   to better mirror the job description while staying truthful to the resume.

4. List skills/experiences that the candidate should emphasize more
   on their resume for THIS role.

5. List skills/experiences that the candidate should develop to be a stronger fit
   (can include soft skills or domain expertise).

Return JSON in this schema:

{
  "tailoredSummary": "string, 2-4 sentences",
  "rewrittenBullets": ["bullet 1", "bullet 2", "..."],
  "skillsToHighlight": ["skill 1", "skill 2", "..."],
  "skillsToDevelop": ["skill 1", "skill 2", "..."]
}`,
}
