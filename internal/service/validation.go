package service

import (
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// cleanText trims and HTML-escapes client-supplied text.
func cleanText(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

func isEmpty(input string) bool {
	return strings.TrimSpace(input) == ""
}

func isEmail(input string) bool {
	return validate.Var(input, "required,email") == nil
}

// signUpIssues collects every validation failure so the caller sees all bad
// fields at once.
func signUpIssues(name, email, password string) []string {
	var issues []string
	if isEmpty(name) {
		issues = append(issues, "Name field cannot be empty")
	}
	if isEmpty(email) {
		issues = append(issues, "Email cannot be empty")
	} else if !isEmail(email) {
		issues = append(issues, "Email is invalid")
	}
	if isEmpty(password) {
		issues = append(issues, "Password cannot be empty")
	}
	return issues
}

func logInIssues(email, password string) []string {
	var issues []string
	if isEmpty(email) {
		issues = append(issues, "Email cannot be empty")
	} else if !isEmail(email) {
		issues = append(issues, "Email is invalid")
	}
	if isEmpty(password) {
		issues = append(issues, "Password cannot be empty")
	}
	return issues
}

// documentIssues expects already-cleaned title and content.
func documentIssues(title, content string) []string {
	var issues []string
	if title == "" {
		issues = append(issues, "Title field cannot be empty")
	}
	if content == "" {
		issues = append(issues, "Content field cannot be empty")
	}
	return issues
}
