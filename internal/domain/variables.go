package domain

import (
	"strconv"
	"strings"
)

// Variable names available in command templates.
const (
	VarPath      = "path"
	VarDir       = "dir"
	VarName      = "name"
	VarIsFile    = "isFile"
	VarIsFolder  = "isFolder"
	VarWorkspace = "workspace"
)

// VariableNames lists the known variables in substitution order.
var VariableNames = []string{VarPath, VarDir, VarName, VarIsFile, VarIsFolder, VarWorkspace}

// Variables maps variable names to their values for one invocation.
type Variables map[string]string

// BuildVariables computes the variable set for a resource and workspace root.
// workspace is empty when there is no workspace.
func BuildVariables(res Resource, workspace string) Variables {
	return Variables{
		VarPath:      res.Path,
		VarDir:       res.Dir(),
		VarName:      res.Name(),
		VarIsFile:    strconv.FormatBool(res.IsFile()),
		VarIsFolder:  strconv.FormatBool(res.IsFolder()),
		VarWorkspace: workspace,
	}
}

// Substitute replaces every ${name} token of a known variable with its value.
// Each variable is replaced in a single pass, in VariableNames order.
// Unknown tokens such as ${bogus} are left as they are.
func Substitute(template string, vars Variables) string {
	result := template
	for _, name := range VariableNames {
		value, ok := vars[name]
		if !ok {
			continue
		}
		result = strings.ReplaceAll(result, "${"+name+"}", value)
	}
	return result
}
