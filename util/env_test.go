package util

import "testing"

func TestGetEnv(t *testing.T) {
	cases := []struct {
		name     string
		key      string
		envValue string
		fallback string
		want     string
		setEnv   bool
	}{
		{
			name:     "trimmed env value wins",
			key:      "ROLLOUT_TEST_ENV",
			envValue: "  value  ",
			fallback: "fallback",
			want:     "value",
			setEnv:   true,
		},
		{
			name:     "fallback when missing",
			key:      "ROLLOUT_TEST_ENV_MISSING",
			fallback: "fallback",
			want:     "fallback",
			setEnv:   false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.setEnv {
				t.Setenv(tc.key, tc.envValue)
			}
			if got := GetEnv(tc.key, tc.fallback); got != tc.want {
				t.Fatalf("unexpected value: got=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestGetIntEnv(t *testing.T) {
	cases := []struct {
		name     string
		envValue string
		fallback int
		want     int
		setEnv   bool
	}{
		{name: "parses integer", envValue: "42", fallback: 7, want: 42, setEnv: true},
		{name: "fallback on garbage", envValue: "not-a-number", fallback: 7, want: 7, setEnv: true},
		{name: "fallback when unset", fallback: 7, want: 7, setEnv: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			key := "ROLLOUT_TEST_INT_ENV"
			if tc.setEnv {
				t.Setenv(key, tc.envValue)
			}
			if got := GetIntEnv(key, tc.fallback); got != tc.want {
				t.Fatalf("unexpected value: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestGetBoolEnv(t *testing.T) {
	cases := []struct {
		name     string
		envValue string
		want     bool
		setEnv   bool
	}{
		{name: "true value", envValue: "true", want: true, setEnv: true},
		{name: "numeric true", envValue: "1", want: true, setEnv: true},
		{name: "false value", envValue: "false", want: false, setEnv: true},
		{name: "garbage is false", envValue: "yep", want: false, setEnv: true},
		{name: "unset is false", want: false, setEnv: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			key := "ROLLOUT_TEST_BOOL_ENV"
			if tc.setEnv {
				t.Setenv(key, tc.envValue)
			}
			if got := GetBoolEnv(key); got != tc.want {
				t.Fatalf("unexpected value: got=%v want=%v", got, tc.want)
			}
		})
	}
}
