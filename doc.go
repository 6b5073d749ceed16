// Package bahncopilot serves railway station, board and journey queries
// against a HAFAS provider and renders chosen journeys as a plain-text
// itinerary block suitable for pasting into an email.
package bahncopilot
