package docs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Page documents one endpoint.
type Page struct {
	Title  string
	Method string
	Path   string
	Body   string
	Result string
}

// Chapter groups pages the way the hosted documentation does.
type Chapter struct {
	Title string
	Intro string
	Pages []Page
}

// Chapters is the full endpoint documentation, rendered by the docs
// subcommand.
var Chapters = []Chapter{
	{
		Title: "Introduction",
		Intro: "krapi is a small JSON API for managing users. Every response is an\n" +
			"envelope {type, msg, data}; the type field, not the HTTP status,\n" +
			"tells you how the request went.",
	},
	{
		Title: "Quick Start",
		Intro: "Start the server with `krapi start --port 8080`, then create a user\n" +
			"and log in with the endpoints in the Users chapter. Seed test data\n" +
			"with `krapi generate --users --len 30`.",
	},
	{
		Title: "Users",
		Intro: "CRUD endpoints for the user resource. Responses never include the\n" +
			"password field.",
		Pages: []Page{
			{
				Title:  "get-users",
				Method: "GET",
				Path:   "/get-users",
				Result: "array of users, newest first",
			},
			{
				Title:  "get-user",
				Method: "GET",
				Path:   "/get-user/{id}",
				Result: "a single user, or NotFound",
			},
			{
				Title:  "create-user",
				Method: "POST",
				Path:   "/create-user",
				Body:   `{name, username, password, email?, img_url?, phone?}`,
				Result: "the created user, or AlreadyExists",
			},
			{
				Title:  "match-user",
				Method: "POST",
				Path:   "/match-user",
				Body:   `{username, password}`,
				Result: "Success, or IncorrectPassword",
			},
			{
				Title:  "update-password",
				Method: "POST",
				Path:   "/update-password",
				Body:   `{username, password, new_password}`,
				Result: "Success, NotFound or IncorrectPassword",
			},
			{
				Title:  "update-user",
				Method: "POST",
				Path:   "/update-user",
				Body:   `{username, name?, email?, phone?, img_url?}`,
				Result: "Success or NotFound; omitted fields keep their value",
			},
		},
	},
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	methodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func renderPage(p Page) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n", methodStyle.Render(p.Method), pathStyle.Render(p.Path))
	if p.Body != "" {
		fmt.Fprintf(&b, "    body:    %s\n", p.Body)
	}
	fmt.Fprintf(&b, "    returns: %s\n", p.Result)
	return b.String()
}

// Print writes the documentation to stdout. With usersOnly set, only
// the Users chapter is shown.
func Print(usersOnly bool) {
	for _, ch := range Chapters {
		if usersOnly && ch.Title != "Users" {
			continue
		}
		fmt.Println(titleStyle.Render(ch.Title))
		if ch.Intro != "" {
			fmt.Println(dimStyle.Render(ch.Intro))
		}
		for _, p := range ch.Pages {
			fmt.Println(renderPage(p))
		}
		fmt.Println()
	}
}
