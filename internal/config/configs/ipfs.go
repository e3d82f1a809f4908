package configs

import "time"

// IPFS configures the gateway mirrors metadata documents are read from.
// Mirrors are tried in the listed order.
type IPFS struct {
	Gateways         []string      `env:"GATEWAYS" envSeparator:"," envDefault:"https://gateway.pinata.cloud/ipfs/,https://ipfs.io/ipfs/,https://cloudflare-ipfs.com/ipfs/"`
	MirrorTimeout    time.Duration `env:"MIRROR_TIMEOUT" envDefault:"5s"`
	MaxDocumentBytes int64         `env:"MAX_DOCUMENT_BYTES" envDefault:"1048576"`
}

// Pinata configures metadata publishing. Publishing is disabled when JWT is
// empty.
type Pinata struct {
	APIURL  string        `env:"API_URL" envDefault:"https://api.pinata.cloud"`
	JWT     string        `env:"JWT"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Enabled reports whether a JWT was supplied.
func (c Pinata) Enabled() bool {
	return c.JWT != ""
}
