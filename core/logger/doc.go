// Package logger records shell session events as newline delimited JSON.
package logger
