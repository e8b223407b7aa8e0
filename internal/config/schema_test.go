package config_test

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/bookshopctl/internal/config"
)

func TestEffectivePageSize_Configured(t *testing.T) {
	d := config.DefaultsConfig{PageSize: 20}
	if got := d.EffectivePageSize(); got != 20 {
		t.Errorf("EffectivePageSize = %d, want 20", got)
	}
}

func TestEffectivePageSize_Default(t *testing.T) {
	d := config.DefaultsConfig{}
	if got := d.EffectivePageSize(); got != 5 {
		t.Errorf("EffectivePageSize = %d, want 5", got)
	}
}

func TestEffectivePageSize_NegativeFallsBack(t *testing.T) {
	d := config.DefaultsConfig{PageSize: -3}
	if got := d.EffectivePageSize(); got != 5 {
		t.Errorf("EffectivePageSize = %d, want 5", got)
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}

func TestExpandHome(t *testing.T) {
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q", got)
	}
	got := config.ExpandHome("~/data")
	if strings.HasPrefix(got, "~") {
		t.Errorf("ExpandHome did not expand: %q", got)
	}
	if !strings.HasSuffix(got, "data") {
		t.Errorf("ExpandHome lost the suffix: %q", got)
	}
}
