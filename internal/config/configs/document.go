package configs

import "time"

// Document configures PDF export. Timestamps on forms are printed in
// Timezone. FontRegular and FontBold are optional UTF-8 TrueType files;
// without them the built-in Latin fonts are used.
type Document struct {
	Timezone    string `env:"TIMEZONE" envDefault:"Asia/Bangkok"`
	FontRegular string `env:"FONT_REGULAR"`
	FontBold    string `env:"FONT_BOLD"`
}

// Location loads Timezone. Callers should import time/tzdata so this works
// on hosts without a zoneinfo database.
func (c Document) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
