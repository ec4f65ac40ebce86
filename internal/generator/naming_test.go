package generator

import "testing"

func TestPascalCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"user", "User"},
		{"user-profile", "UserProfile"},
		{"user_profile", "UserProfile"},
		{"blog post", "BlogPost"},
		{"api", "Api"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PascalCase(tt.in); got != tt.want {
			t.Errorf("PascalCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"user", "user"},
		{"user-profile", "userProfile"},
		{"Order", "order"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CamelCase(tt.in); got != tt.want {
			t.Errorf("CamelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"user", "users"},
		{"box", "boxes"},
		{"class", "classes"},
		{"match", "matches"},
		{"dish", "dishes"},
		{"category", "categories"},
		{"day", "days"},
		// Irregular nouns come out regular on purpose.
		{"person", "persons"},
	}
	for _, tt := range tests {
		if got := Pluralize(tt.in); got != tt.want {
			t.Errorf("Pluralize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
