package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadReadsEnvironment() {
	s.T().Setenv("SPENDTRACK_API_URL", "https://api.example.com/api/v1")
	s.T().Setenv("SPENDTRACK_SESSION_TOKEN", "token-123")
	s.T().Setenv("SPENDTRACK_HTTP_TIMEOUT", "15s")
	s.T().Setenv("SPENDTRACK_METRICS_ENABLED", "true")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("https://api.example.com/api/v1", cfg.API.BaseURL)
	s.Equal("token-123", cfg.API.SessionToken)
	s.Equal(15*time.Second, cfg.HTTP.Timeout)
	s.True(cfg.Metrics.Enabled)
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("SPENDTRACK_API_URL", "https://api.example.com/api/v1")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(time.Duration(0), cfg.HTTP.Timeout, "no request timeout by default")
	s.Equal("spendtrack-client", cfg.HTTP.UserAgent)
	s.False(cfg.Metrics.Enabled)
}

func (s *ConfigTestSuite) TestMissingBaseURLFails() {
	s.T().Setenv("SPENDTRACK_API_URL", "")

	_, err := Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestInvalidTimeoutFallsBackToDefault() {
	s.T().Setenv("SPENDTRACK_API_URL", "https://api.example.com/api/v1")
	s.T().Setenv("SPENDTRACK_HTTP_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal(time.Duration(0), cfg.HTTP.Timeout)
}
