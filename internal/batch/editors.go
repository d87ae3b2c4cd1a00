package batch

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// Editor is a running Unity process.
type Editor struct {
	PID     int32
	Name    string
	Project string
}

// FindRunningEditors lists Unity processes that have projectPath open.
// Processes whose details cannot be read are skipped.
func FindRunningEditors(ctx context.Context, projectPath string) ([]Editor, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	want := normalizeProject(projectPath)
	var editors []Editor
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || !strings.Contains(strings.ToLower(name), "unity") {
			continue
		}
		args, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			continue
		}
		project, ok := ProjectPathArg(args)
		if !ok || normalizeProject(project) != want {
			continue
		}
		editors = append(editors, Editor{PID: p.Pid, Name: name, Project: project})
	}
	return editors, nil
}

// ProjectPathArg returns the value following -projectPath in args. Unity
// accepts the flag case-insensitively.
func ProjectPathArg(args []string) (string, bool) {
	for i := 0; i < len(args)-1; i++ {
		if strings.EqualFold(args[i], "-projectPath") {
			return args[i+1], true
		}
	}
	return "", false
}

func normalizeProject(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	p = filepath.Clean(p)
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		p = strings.ToLower(p)
	}
	return p
}
