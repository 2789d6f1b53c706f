package template

import (
	"fmt"
	"time"
)

// ScaffoldContext carries the values substituted into scaffold templates.
type ScaffoldContext struct {
	ProjectName string
	Author      string
	Copyright   string
	Version     string
	Release     string
}

// NewScaffoldContext builds a context from init answers, filling derivable
// fields: an empty copyright becomes "<year>, <author>", an empty release
// mirrors the version.
func NewScaffoldContext(name, author, copyright, version, release string) *ScaffoldContext {
	if copyright == "" && author != "" {
		copyright = fmt.Sprintf("%d, %s", time.Now().Year(), author)
	}
	if release == "" {
		release = version
	}
	return &ScaffoldContext{
		ProjectName: name,
		Author:      author,
		Copyright:   copyright,
		Version:     version,
		Release:     release,
	}
}
