package apperr

// ConfigError is the root of the configuration layer.
type ConfigError struct {
	base
}

func (e *ConfigError) Error() string { return e.render("ConfigError", "") }
func (e *ConfigError) Kind() Kind    { return KindConfig }

func NewConfig(msg string, cause error) *ConfigError {
	return &ConfigError{base{Msg: msg, Cause: cause}}
}

// MissingConfigError reports an absent configuration key.
type MissingConfigError struct {
	base
	ConfigKey string
}

func (e *MissingConfigError) Error() string { return e.render("MissingConfigError", "") }
func (e *MissingConfigError) Kind() Kind    { return KindMissingConfig }

func NewMissingConfig(msg, configKey string) *MissingConfigError {
	return &MissingConfigError{base: base{Msg: msg}, ConfigKey: configKey}
}
