// Package services defines the error taxonomy shared by the parsing and
// resolution pipeline. Errors are tagged with sentinel markers so callers can
// classify failures with errors.Is without inspecting message text.
package services
