package config

import (
	"github.com/rs/zerolog/log"
)

// GetHuggingFaceSpace returns the Hugging Face Space identifier hosting the model
func GetHuggingFaceSpace() string {
	value := GetEnvOrDefault("HUGGINGFACE_SPACE", "Abdhack/medgemma-4b-it")
	log.Debug().Str("space", value).Msg("Hugging Face Space loaded from environment")
	return value
}

// GetHFToken returns the optional Hugging Face access token for private Spaces
func GetHFToken() string {
	value := GetEnvOrDefault("HF_TOKEN", "")
	if value == "" {
		log.Debug().Msg("HF_TOKEN not set - Space will be queried anonymously")
	}
	return value
}
