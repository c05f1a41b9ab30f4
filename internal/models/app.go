package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Submission   State          // Latest snapshot pushed by core
	Input        textarea.Model // Article text buffer
	Spinner      spinner.Model  // Shown while a request is in flight
	Status       string         // Status bar text
	Loading      bool           // Loading state from core
	MinChars     int            // Advisory length threshold
	ProfileName  string         // Active profile shown in the header
	Endpoint     string         // Where verdicts come from
	Width        int            // Terminal width
	Height       int            // Terminal height
	ServiceReady bool           // Whether a classifier is configured
}
