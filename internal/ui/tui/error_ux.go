package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/vilain/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			switch {
			case strings.Contains(oe.Op, "pddlfs"):
				return "Document not found"
			case strings.Contains(oe.Op, "yamlvocab"), strings.Contains(oe.Op, "vocabulary"):
				return "Vocabulary not found"
			case strings.Contains(oe.Op, "workspacefinder.findroot"):
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindStructuralNotFound:
			return "Missing section: " + causeText(oe)

		case domain.KindUnbalanced:
			return "Unbalanced parentheses: " + causeText(oe)

		case domain.KindInvalidCoordinate:
			return "Box coordinates outside [0,1]"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

// causeText drops the sentinel suffix so the message reads naturally.
func causeText(oe *domain.OpError) string {
	if oe.Err == nil {
		return string(oe.Kind)
	}
	s := oe.Err.Error()
	if i := strings.LastIndex(s, ": "); i > 0 {
		s = s[:i]
	}
	return clampString(s, 80)
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
