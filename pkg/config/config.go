package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	RAG     RAGConfig
	Prompts PromptsConfig
	Logger  LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// OpenAIConfig holds credentials and endpoint for the OpenAI-compatible
// completion and embedding APIs. BaseURL may point at OpenRouter or any
// other compatible gateway.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type RAGConfig struct {
	EmbeddingModel string
	TopK           int
	IndexDir       string
}

type PromptsConfig struct {
	Path string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// If no .env file found, continue with plain environment variables
	// (useful for Docker/K8s).

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "120"))
	llmTimeout, _ := strconv.Atoi(getEnv("OPENAI_TIMEOUT", "90"))
	ragTopK, _ := strconv.Atoi(getEnv("RAG_TOP_K", "5"))

	// OPENROUTER_API_KEY is accepted as an alias so the same build works
	// against OpenRouter without extra configuration.
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		OpenAI: OpenAIConfig{
			APIKey:  apiKey,
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Timeout: time.Duration(llmTimeout) * time.Second,
		},
		RAG: RAGConfig{
			EmbeddingModel: getEnv("RAG_EMBEDDING_MODEL", "text-embedding-3-small"),
			TopK:           ragTopK,
			IndexDir:       getEnv("RAG_INDEX_DIR", "faiss_indexes"),
		},
		Prompts: PromptsConfig{
			Path: getEnv("PROMPTS_CONFIG", "prompts.json"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
