package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed store_profile.yaml
var defaultProfile []byte

var ErrInvalidProfile = errors.New("invalid store profile")

type OpeningHours struct {
	Days  string `yaml:"days" json:"days"`
	Open  string `yaml:"open" json:"open"`
	Close string `yaml:"close" json:"close"`
}

type Contact struct {
	Address       string `yaml:"address" json:"address"`
	WhatsAppLabel string `yaml:"whatsapp_label" json:"whatsapp_label"`
}

// StoreProfile is the static content of the about and contact pages.
type StoreProfile struct {
	Name           string         `yaml:"name" json:"name"`
	History        string         `yaml:"history" json:"history"`
	Mission        string         `yaml:"mission" json:"mission"`
	Values         []string       `yaml:"values" json:"values"`
	Hours          []OpeningHours `yaml:"hours" json:"hours"`
	PaymentMethods []string       `yaml:"payment_methods" json:"payment_methods"`
	Contact        Contact        `yaml:"contact" json:"contact"`
}

// LoadStoreProfile reads the profile at path, or the built-in one when path
// is empty.
func LoadStoreProfile(path string) (*StoreProfile, error) {
	raw := defaultProfile
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read store profile: %w", err)
		}
		raw = b
	}
	return parseStoreProfile(raw)
}

func parseStoreProfile(raw []byte) (*StoreProfile, error) {
	var p StoreProfile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	return &p, nil
}
