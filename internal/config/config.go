package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Addr                string `env:"ADDR"                 envDefault:":8080"`
	OpenAIAPIKey        string `env:"OPENAI_API_KEY"`
	ElevenLabsAPIKey    string `env:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID   string `env:"ELEVENLABS_VOICE_ID"`
	ExtractiveSentences int    `env:"EXTRACTIVE_SENTENCES" envDefault:"5"`
	MaxUploadBytes      int64  `env:"MAX_UPLOAD_BYTES"     envDefault:"20971520"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
