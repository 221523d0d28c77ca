package model

type nodeType string

const (
	SourceNodeType nodeType = "source"
	FilterNodeType nodeType = "filter"
)

// NodeInfo describes a pipeline node to pipeline options.
type NodeInfo struct {
	Type nodeType
	Name string
}

// SourceInfo returns the description of a pipeline source called name.
func SourceInfo(name string) *NodeInfo {
	return &NodeInfo{Type: SourceNodeType, Name: name}
}

// FilterInfo returns the description of a filter node called name.
func FilterInfo(name string) *NodeInfo {
	return &NodeInfo{Type: FilterNodeType, Name: name}
}
