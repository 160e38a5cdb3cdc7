package main

// CLIResult is the top-level JSON envelope for all query commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIUnit is a JSON-friendly unit representation.
type CLIUnit struct {
	Label     string `json:"label"`
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Path      string `json:"path"`
}

// CLIEdge is a JSON-friendly outgoing dependency.
type CLIEdge struct {
	Target   string `json:"target"`
	Kind     string `json:"kind"`
	Implicit bool   `json:"implicit,omitempty"`
}
