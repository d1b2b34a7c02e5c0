package navigation

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		view          View
		authenticated bool
		redirect      View
	}{
		{ViewMenu, false, ViewLogin},
		{ViewConfirm, false, ViewLogin},
		{ViewLogin, false, ""},
		{ViewMenu, true, ""},
		{ViewConfirm, true, ""},
		{ViewLogin, true, ViewMenu},
		{View("about"), false, ""},
		{View("about"), true, ""},
	}
	for _, tt := range tests {
		err := Check(tt.view, tt.authenticated)
		if tt.redirect == "" {
			if err != nil {
				t.Errorf("Check(%q, %v) = %v, want nil", tt.view, tt.authenticated, err)
			}
			if got := Resolve(tt.view, tt.authenticated); got != tt.view {
				t.Errorf("Resolve(%q, %v) = %q, want %q", tt.view, tt.authenticated, got, tt.view)
			}
			continue
		}
		var redirect *RedirectError
		if !errors.As(err, &redirect) {
			t.Fatalf("Check(%q, %v) = %v, want *RedirectError", tt.view, tt.authenticated, err)
		}
		if redirect.To != tt.redirect || redirect.From != tt.view {
			t.Errorf("Check(%q, %v) redirects %q → %q, want → %q", tt.view, tt.authenticated, redirect.From, redirect.To, tt.redirect)
		}
		if got := Resolve(tt.view, tt.authenticated); got != tt.redirect {
			t.Errorf("Resolve(%q, %v) = %q, want %q", tt.view, tt.authenticated, got, tt.redirect)
		}
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		page string
		want View
	}{
		{"", ViewMenu},
		{"index.html", ViewMenu},
		{"/shop/index.html", ViewMenu},
		{"menu", ViewMenu},
		{"confirm.html", ViewConfirm},
		{"login.html", ViewLogin},
		{"LOGIN", ViewLogin},
		{"about.html", View("about")},
	}
	for _, tt := range tests {
		if got := ParseView(tt.page); got != tt.want {
			t.Errorf("ParseView(%q) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	r := Rules()
	r[0].Redirect = "nowhere"
	if Rules()[0].Redirect != ViewLogin {
		t.Error("Rules exposed the internal table")
	}
}
