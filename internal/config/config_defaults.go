package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.2)
	v.SetDefault("ai.useSystemPrompts", true)

	// Prompt hot reload defaults
	v.SetDefault("ai.promptReload.enabled", false)
	v.SetDefault("ai.promptReload.debounceDelay", time.Second)

	// AI Configuration - ExtractJob operation defaults
	v.SetDefault("ai.extractJob.provider", "gemini")
	v.SetDefault("ai.extractJob.model", "")
	v.SetDefault("ai.extractJob.timeout", 60*time.Second)
	v.SetDefault("ai.extractJob.apiKey", "")
	v.SetDefault("ai.extractJob.maxRetries", 3)
	v.SetDefault("ai.extractJob.temperature", 0.1) // Low temperature for structured extraction
	v.SetDefault("ai.extractJob.useSystemPrompts", true)

	// AI Configuration - ExtractResume operation defaults
	v.SetDefault("ai.extractResume.provider", "gemini")
	v.SetDefault("ai.extractResume.model", "")
	v.SetDefault("ai.extractResume.timeout", 60*time.Second)
	v.SetDefault("ai.extractResume.apiKey", "")
	v.SetDefault("ai.extractResume.maxRetries", 3)
	v.SetDefault("ai.extractResume.temperature", 0.1) // Low temperature for structured extraction
	v.SetDefault("ai.extractResume.useSystemPrompts", true)

	// AI Configuration - Advise operation defaults
	v.SetDefault("ai.advise.provider", "gemini")
	v.SetDefault("ai.advise.model", "")
	v.SetDefault("ai.advise.timeout", 90*time.Second) // Longer timeout for free-form generation
	v.SetDefault("ai.advise.apiKey", "")
	v.SetDefault("ai.advise.maxRetries", 2)
	v.SetDefault("ai.advise.temperature", 0.4) // Some creativity for advice writing
	v.SetDefault("ai.advise.useSystemPrompts", true)

	// Circuit Breaker Configuration defaults for all operations
	v.SetDefault("ai.extractJob.circuitBreaker.enabled", true)
	v.SetDefault("ai.extractJob.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.extractJob.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.extractJob.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.extractJob.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.extractJob.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.extractResume.circuitBreaker.enabled", true)
	v.SetDefault("ai.extractResume.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.extractResume.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.extractResume.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.extractResume.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.extractResume.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.advise.circuitBreaker.enabled", true)
	v.SetDefault("ai.advise.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.advise.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.advise.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.advise.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.advise.circuitBreaker.failureThreshold", 0.6)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server, mutual
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.caFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")           // TLS 1.2 minimum
	v.SetDefault("server.tls.cipherSuites", []string{})    // Use Go defaults
	v.SetDefault("server.tls.clientAuthPolicy", "require") // require, request, verify
	v.SetDefault("server.tls.insecureSkipVerify", false)
	v.SetDefault("server.tls.serverName", "")
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024)   // 1MB for text payloads
	v.SetDefault("app.maxPDFSize", 10*1024*1024) // 10MB for PDF uploads

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.geminiKey", "")
	v.SetDefault("vault.secrets.tlsCerts", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "jobmatch")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackModelInfo", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackSuccessRates", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackContentSizes", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackMatchScores", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)
	v.SetDefault("observability.healthCheck.aiModelCheckTimeout", 10*time.Second)
}
