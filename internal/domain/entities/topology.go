package entities

import (
	"fmt"
	"path"
	"strings"
)

// ChainKind tells which chain a node belongs to.
type ChainKind string

const (
	ChainRelay ChainKind = "relay"
	ChainPara  ChainKind = "para"
)

// NodeRole is the function of a node in the test network.
type NodeRole int

const (
	RoleRPC NodeRole = iota
	RoleValidator
	RoleCollator
)

const (
	ComposeFileName = "compose.yaml"
	ComposeVersion  = "3"

	RelayChainSpecFile = "raw-chainspec.json"
	ParaChainSpecFile  = "raw-para-chainspec.json"

	dirEnvs       = "envs"
	dirResources  = "resources"
	dirSecrets    = "resources/secrets"
	secretMount   = "/data/config/secret_phrase.dat"
	nodeKeyMount  = "/data/config/node_key.dat"
	chainMount    = "/data/chain_spec.json"
	relayChainMnt = "/data/relay_chain_spec.json"

	secretFileMode = 0o600
	envFileMode    = 0o644
)

// NodeSpec describes one service of the test network.
type NodeSpec struct {
	Name        string    // Compose service name, also used for env and secret file names
	DisplayName string    // Value of ZKV_CONF_NAME
	Chain       ChainKind // relay or para
	Role        NodeRole
	Identity    string   // Collator dev identity (alice, bob)
	Ports       []string // Published ports, RPC nodes only
}

// NeedsNodeKey reports whether the node gets a generated libp2p node key.
func (n NodeSpec) NeedsNodeKey() bool { return n.Role != RoleRPC }

// NeedsSecretPhrase reports whether the node mounts a secret phrase.
func (n NodeSpec) NeedsSecretPhrase() bool { return n.Role == RoleValidator }

// DefaultTopology is the two-validator, two-collator network with one RPC
// node per chain.
func DefaultTopology() []NodeSpec {
	return []NodeSpec{
		{Name: "local_node", DisplayName: "RpcRelay", Chain: ChainRelay, Role: RoleRPC,
			Ports: []string{"9944:9944", "30333:30333"}},
		{Name: "validator_1", DisplayName: "Validator1", Chain: ChainRelay, Role: RoleValidator},
		{Name: "validator_2", DisplayName: "Validator2", Chain: ChainRelay, Role: RoleValidator},
		{Name: "local_paranode", DisplayName: "RpcPara", Chain: ChainPara, Role: RoleRPC,
			Ports: []string{"8844:9944", "20333:30333"}},
		{Name: "collator_1", DisplayName: "Collator1", Chain: ChainPara, Role: RoleCollator, Identity: "alice"},
		{Name: "collator_2", DisplayName: "Collator2", Chain: ChainPara, Role: RoleCollator, Identity: "bob"},
	}
}

// ComposeOptions parameterizes the generated project.
type ComposeOptions struct {
	RelayImage    string
	ParaImage     string
	SecretPhrases map[string]string // validator name -> secret phrase
	NodeKeys      map[string]string // node name -> hex node key
}

// Service is one entry of the compose `services` mapping.
type Service struct {
	Name    string   `yaml:"-"`
	Image   string   `yaml:"image"`
	Volumes []string `yaml:"volumes"`
	EnvFile []string `yaml:"env_file"`
	Ports   []string `yaml:"ports,omitempty"`
}

// GeneratedFile is a file written below the project root.
type GeneratedFile struct {
	Path    string // Slash separated, relative to the project root
	Content string
	Mode    uint32
}

// ComposeProject is everything the generator materializes, apart from the
// copied chain specs.
type ComposeProject struct {
	Version     string
	Services    []Service
	Directories []string
	Files       []GeneratedFile
}

// NewComposeProject builds the compose services, env files and secrets of topology.
func NewComposeProject(topology []NodeSpec, opts ComposeOptions) (*ComposeProject, error) {
	project := &ComposeProject{
		Version: ComposeVersion,
		Directories: []string{
			path.Join(dirEnvs, string(ChainRelay)),
			path.Join(dirEnvs, string(ChainPara)),
			dirResources,
			dirSecrets,
		},
	}

	for _, node := range topology {
		service, files, err := buildNode(node, opts)
		if err != nil {
			return nil, err
		}
		project.Services = append(project.Services, service)
		project.Files = append(project.Files, files...)
	}

	return project, nil
}

func buildNode(node NodeSpec, opts ComposeOptions) (Service, []GeneratedFile, error) {
	image := opts.RelayImage
	chainSpec := RelayChainSpecFile
	if node.Chain == ChainPara {
		image = opts.ParaImage
		chainSpec = ParaChainSpecFile
	}

	envPath := path.Join(dirEnvs, string(node.Chain), ".env."+node.Name)
	service := Service{
		Name:    node.Name,
		Image:   image,
		Volumes: []string{mount(path.Join(dirResources, chainSpec), chainMount)},
		EnvFile: []string{"./" + envPath},
		Ports:   node.Ports,
	}

	env, err := envContent(node)
	if err != nil {
		return Service{}, nil, err
	}
	files := []GeneratedFile{{Path: envPath, Content: env, Mode: envFileMode}}

	if node.NeedsSecretPhrase() {
		phrase, ok := opts.SecretPhrases[node.Name]
		if !ok {
			return Service{}, nil, fmt.Errorf("no secret phrase configured for %q", node.Name)
		}
		secretPath := path.Join(dirSecrets, node.Name+".dat")
		service.Volumes = append(service.Volumes, mount(secretPath, secretMount))
		files = append(files, GeneratedFile{Path: secretPath, Content: phrase, Mode: secretFileMode})
	}

	if node.NeedsNodeKey() {
		key, ok := opts.NodeKeys[node.Name]
		if !ok {
			return Service{}, nil, fmt.Errorf("no node key generated for %q", node.Name)
		}
		keyPath := path.Join(dirSecrets, node.Name+"_nodekey.dat")
		service.Volumes = append(service.Volumes, mount(keyPath, nodeKeyMount))
		files = append(files, GeneratedFile{Path: keyPath, Content: key, Mode: secretFileMode})
	}

	if node.Chain == ChainPara {
		service.Volumes = append(service.Volumes, mount(path.Join(dirResources, RelayChainSpecFile), relayChainMnt))
	}

	return service, files, nil
}

func mount(hostPath, containerPath string) string {
	return "./" + hostPath + ":" + containerPath
}

func envContent(node NodeSpec) (string, error) {
	var sb strings.Builder
	sb.WriteString("# RUST_LOG=debug\n\n")
	sb.WriteString("# Node config\n")
	fmt.Fprintf(&sb, "ZKV_CONF_NAME=%q\n\n", node.DisplayName)

	switch {
	case node.Role == RoleValidator:
		sb.WriteString("ZKV_CONF_BASE_PATH=\"/data/node\"\n")
		sb.WriteString("ZKV_CONF_VALIDATOR=\"true\"\n")
		sb.WriteString("ZKV_CONF_CHAIN=\"" + chainMount + "\"\n")
	case node.Role == RoleCollator:
		if node.Identity == "" {
			return "", fmt.Errorf("collator %q has no identity", node.Name)
		}
		fmt.Fprintf(&sb, "ZKV_CONF_%s=\"true\"\n", strings.ToUpper(node.Identity))
		sb.WriteString("ZKV_CONF_COLLATOR=\"true\"\n")
		sb.WriteString("ZKV_CONF_BASE_PATH=\"/data/node\"\n\n")
		sb.WriteString("ZKV_CONF_CHAIN=\"" + chainMount + "\"\n\n")
		sb.WriteString("RC_CONF_CHAIN=\"" + relayChainMnt + "\"\n")
	default:
		sb.WriteString("ZKV_CONF_BASE_PATH=\"/data/node\"\n")
		sb.WriteString("ZKV_CONF_RPC_EXTERNAL=\"true\"\n")
		sb.WriteString("ZKV_CONF_RPC_CORS=\"all\"\n")
		sb.WriteString("ZKV_CONF_PRUNING=\"archive\"\n\n")
		sb.WriteString("ZKV_CONF_CHAIN=\"" + chainMount + "\"\n")
		if node.Chain == ChainPara {
			sb.WriteString("RC_CONF_CHAIN=\"" + relayChainMnt + "\"\n")
		}
	}

	return sb.String(), nil
}
