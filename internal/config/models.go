package config

// DetectorConfig represents the code detector thresholds
type DetectorConfig struct {
	MinConfidence      float64
	MinTextLength      int
	EnableGrammarCheck bool
}

// AnalysisConfig represents the region analysis pipeline settings
type AnalysisConfig struct {
	MinOCRConfidence float64
	ChromePhrases    []string
}

// ServerConfig represents the filter server settings
type ServerConfig struct {
	FilterType    string
	ListenAddress string
	ReadTimeout   string
	MaxBatchBytes int
}

// GetDetector returns the detector configuration
func (c *Config) GetDetector() DetectorConfig {
	return DetectorConfig{
		MinConfidence:      c.GetFloat64("detector.min_confidence"),
		MinTextLength:      c.GetInt("detector.min_text_length"),
		EnableGrammarCheck: c.GetBool("detector.enable_grammar_check"),
	}
}

// GetAnalysis returns the region analysis configuration
func (c *Config) GetAnalysis() AnalysisConfig {
	return AnalysisConfig{
		MinOCRConfidence: c.GetFloat64("analysis.min_ocr_confidence"),
		ChromePhrases:    c.GetStringSlice("analysis.chrome_phrases"),
	}
}

// GetServer returns the server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		FilterType:    c.GetString("server.filter_type"),
		ListenAddress: c.GetString("server.listen_address"),
		ReadTimeout:   c.GetString("server.read_timeout"),
		MaxBatchBytes: c.GetInt("server.max_batch_bytes"),
	}
}
