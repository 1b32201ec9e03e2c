// Package models contains shared data structures used across the application.
package models
