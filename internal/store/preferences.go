package store

import "fyne.io/fyne/v2"

// Preferences adapts the Fyne application preferences to Store.
type Preferences struct {
	prefs fyne.Preferences
}

// NewPreferences wraps the preferences of a Fyne app.
func NewPreferences(prefs fyne.Preferences) *Preferences {
	return &Preferences{prefs: prefs}
}

// Bool returns the preference at key, or fallback.
func (p *Preferences) Bool(key string, fallback bool) bool {
	return p.prefs.BoolWithFallback(key, fallback)
}

// SetBool stores a bool preference.
func (p *Preferences) SetBool(key string, value bool) {
	p.prefs.SetBool(key, value)
}

// String returns the preference at key, or fallback.
func (p *Preferences) String(key, fallback string) string {
	return p.prefs.StringWithFallback(key, fallback)
}

// SetString stores a string preference.
func (p *Preferences) SetString(key, value string) {
	p.prefs.SetString(key, value)
}

// Float returns the preference at key, or fallback.
func (p *Preferences) Float(key string, fallback float64) float64 {
	return p.prefs.FloatWithFallback(key, fallback)
}

// SetFloat stores a float preference.
func (p *Preferences) SetFloat(key string, value float64) {
	p.prefs.SetFloat(key, value)
}
