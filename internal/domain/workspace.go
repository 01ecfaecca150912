package domain

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}

// VocabularyRef is a lightweight reference to a vocabulary file.
type VocabularyRef struct {
	Name string
	Path string
}

// BoxSetRef is a lightweight reference to a fixed-box file.
type BoxSetRef struct {
	Name string
	Path string
}
