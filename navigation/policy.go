package navigation

import (
	"strings"
)

// View is a page of the storefront
type View string

const (
	ViewLogin   View = "login"
	ViewMenu    View = "menu"
	ViewConfirm View = "confirm"
)

// Rule sends a visitor of View with the given login state to Redirect
type Rule struct {
	View          View `json:"view"`
	Authenticated bool `json:"authenticated"`
	Redirect      View `json:"redirect"`
}

// rules is the authoritative gating table; views not listed are always allowed
var rules = []Rule{
	// Menu and order confirmation need a session
	{View: ViewMenu, Authenticated: false, Redirect: ViewLogin},
	{View: ViewConfirm, Authenticated: false, Redirect: ViewLogin},
	// Logged-in users skip the login page
	{View: ViewLogin, Authenticated: true, Redirect: ViewMenu},
}

type ruleKey struct {
	view          View
	authenticated bool
}

var ruleMap = func() map[ruleKey]View {
	m := make(map[ruleKey]View)
	for _, r := range rules {
		m[ruleKey{r.View, r.Authenticated}] = r.Redirect
	}
	return m
}()

// RedirectError reports that a view may not be shown and where to go instead
type RedirectError struct {
	From View
	To   View
}

func (e *RedirectError) Error() string {
	return "view " + string(e.From) + " is not available, redirect to " + string(e.To)
}

// Check returns a *RedirectError when view must not be rendered
func Check(view View, authenticated bool) error {
	if to, ok := ruleMap[ruleKey{view, authenticated}]; ok {
		return &RedirectError{From: view, To: to}
	}
	return nil
}

// Resolve returns the view that should actually be rendered
func Resolve(view View, authenticated bool) View {
	if to, ok := ruleMap[ruleKey{view, authenticated}]; ok {
		return to
	}
	return view
}

// ParseView maps page names such as "index.html" or "" onto views
func ParseView(page string) View {
	p := strings.ToLower(strings.TrimSpace(page))
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	p = strings.TrimSuffix(p, ".html")
	switch p {
	case "", "index", "menu":
		return ViewMenu
	case "confirm", "checkout":
		return ViewConfirm
	}
	return View(p)
}

// Rules returns the full gating table for documentation
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
