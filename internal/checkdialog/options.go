package checkdialog

import "github.com/Akaiko1/check-dialog/internal/settings"

// Stable persistence keys of the analysis toggles. They double as the
// i18n message keys of the toggle labels.
const (
	KeyShowAll          = "ShowAll"
	KeyCheckCodingStyle = "CheckCodingStyle"
	KeyErrorsOnly       = "ErrorsOnly"
	KeyVerbose          = "Verbose"
	KeyForce            = "Force"
	KeyXMLOutput        = "XmlOutput"
	KeyUnusedFunctions  = "UnusedFunctions"
	KeySecurityChecks   = "SecurityChecks"
	KeyVCLChecks        = "VclChecks"
)

// Option binds a toggle key to its field in settings.Settings.
type Option struct {
	Key   string
	field func(*settings.Settings) *bool
}

// Default returns the built-in value of the option.
func (o Option) Default() bool {
	d := settings.Defaults()
	return *o.field(&d)
}

var options = []Option{
	{KeyShowAll, func(s *settings.Settings) *bool { return &s.ShowAll }},
	{KeyCheckCodingStyle, func(s *settings.Settings) *bool { return &s.CheckCodingStyle }},
	{KeyErrorsOnly, func(s *settings.Settings) *bool { return &s.ErrorsOnly }},
	{KeyVerbose, func(s *settings.Settings) *bool { return &s.Verbose }},
	{KeyForce, func(s *settings.Settings) *bool { return &s.Force }},
	{KeyXMLOutput, func(s *settings.Settings) *bool { return &s.XMLOutput }},
	{KeyUnusedFunctions, func(s *settings.Settings) *bool { return &s.CheckUnusedFunctions }},
	{KeySecurityChecks, func(s *settings.Settings) *bool { return &s.SecurityChecks }},
	{KeyVCLChecks, func(s *settings.Settings) *bool { return &s.VCLChecks }},
}

// Options returns the toggles in display order.
func Options() []Option {
	return append([]Option(nil), options...)
}

// Keys returns the toggle keys in display order.
func Keys() []string {
	keys := make([]string, len(options))
	for i, o := range options {
		keys[i] = o.Key
	}
	return keys
}
