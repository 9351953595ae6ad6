// Package compiler turns generated LaTeX into deliverable documents by
// shelling out to pdflatex and pandoc inside throwaway work directories.
package compiler

import "fmt"

// CompileError represents a failed LaTeX compilation. Log carries the tail
// of the compiler log when one was produced.
type CompileError struct {
	Message string
	Log     string
	Cause   error
}

func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF compilation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("PDF compilation failed: %s", e.Message)
}

func (e *CompileError) Unwrap() error {
	return e.Cause
}

// ConversionError represents a failed LaTeX to DOCX conversion.
type ConversionError struct {
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("DOCX conversion failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("DOCX conversion failed: %s", e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
