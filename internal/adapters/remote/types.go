package remote

// Wire types for the verification service HTTP/JSON protocol. Optional
// strings marshal as null when unset, matching what the service expects.

type verifyRequest struct {
	Repository string   `json:"repository"`
	CommitHash *string  `json:"commit_hash"`
	ProgramID  string   `json:"program_id"`
	LibName    *string  `json:"lib_name"`
	BPFFlag    bool     `json:"bpf_flag"`
	MountPath  *string  `json:"mount_path"`
	BaseImage  *string  `json:"base_image"`
	CargoArgs  []string `json:"cargo_args"`
}

type verifyResponse struct {
	RequestID string `json:"request_id"`
}

// conflictResponse covers both shapes a 409 reply can take: a processed
// verdict with hashes, or a carried service error. Pointer fields distinguish
// "absent" from zero values so the shape can be classified once.
type conflictResponse struct {
	IsVerified     *bool  `json:"is_verified"`
	OnChainHash    string `json:"on_chain_hash"`
	ExecutableHash string `json:"executable_hash"`
	RepoURL        string `json:"repo_url"`
	Status         string `json:"status"`
	Error          string `json:"error"`
}

type jobResponse struct {
	Status         string `json:"status"`
	OnChainHash    string `json:"on_chain_hash"`
	ExecutableHash string `json:"executable_hash"`
	RepoURL        string `json:"repo_url"`
	Message        string `json:"message"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
