package models

import "html/template"

// Page is a standalone markdown page such as "about" or "learning".
type Page struct {
	Name        string
	Title       string
	Description string
	Content     template.HTML
}

// Project is one entry of content/projects.yaml.
type Project struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	LiveURL      string   `yaml:"liveUrl" json:"live_url,omitempty"`
	GithubURL    string   `yaml:"githubUrl" json:"github_url,omitempty"`
	ImageURL     string   `yaml:"imageUrl" json:"image_url,omitempty"`
	Featured     bool     `yaml:"featured" json:"featured"`
}
