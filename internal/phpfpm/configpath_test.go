package phpfpm

import (
	"errors"
	"testing"
)

func TestPoolConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		version string
		dirs    []string
		want    string
	}{
		{
			"ubuntu layout",
			"8.1",
			[]string{"/etc/php/8.1/fpm/pool.d"},
			"/etc/php/8.1/fpm/pool.d",
		},
		{
			"fedora layout",
			"8.1",
			[]string{"/etc/php-fpm.d"},
			"/etc/php-fpm.d",
		},
		{
			"arch layout",
			"8.1",
			[]string{"/etc/php/php-fpm.d"},
			"/etc/php/php-fpm.d",
		},
		{
			"opensuse layout",
			"7.4",
			[]string{"/etc/php7/fpm/php-fpm.d"},
			"/etc/php7/fpm/php-fpm.d",
		},
		{
			"first candidate wins",
			"8.1",
			[]string{"/etc/php/8.1/fpm/pool.d", "/etc/php-fpm.d"},
			"/etc/php/8.1/fpm/pool.d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, _, _, fs := newTestManager(t)
			for _, dir := range tt.dirs {
				fs.AddDir(dir)
			}

			got, err := mgr.poolConfigPath(tt.version)
			if err != nil {
				t.Fatalf("poolConfigPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("poolConfigPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPoolConfigPath_NoneExists(t *testing.T) {
	mgr, _, _, _ := newTestManager(t)

	_, err := mgr.poolConfigPath("8.1")
	if err == nil {
		t.Fatal("expected error when no candidate directory exists")
	}

	var notFound *ConfigPathNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %T, want *ConfigPathNotFoundError", err)
	}
	if notFound.Version != "8.1" {
		t.Errorf("Version = %q, want %q", notFound.Version, "8.1")
	}
	if !errors.Is(err, ErrConfigPathNotFound) {
		t.Error("error does not unwrap to ErrConfigPathNotFound")
	}
}
