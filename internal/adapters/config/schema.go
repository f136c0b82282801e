package config

// File represents the structure of the solverify.yaml configuration file.
// Every field is optional; unset fields keep their built-in defaults.
type File struct {
	RemoteURL    string `yaml:"remote_url"`
	RPCURL       string `yaml:"rpc_url"`
	BaseImage    string `yaml:"base_image"`
	PollInterval string `yaml:"poll_interval"`
	PollMaxWait  string `yaml:"poll_max_wait"`
	ResultsPath  string `yaml:"results_path"`
}
