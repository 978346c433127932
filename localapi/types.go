package localapi

import (
	"encoding/json"
	"time"
)

// Status is a snapshot of the daemon's view of the node and its tailnet.
// Field names mirror the daemon's JSON schema and must stay in sync with it.
type Status struct {
	Version        string                 `json:"Version"`
	BackendState   string                 `json:"BackendState"`
	AuthURL        string                 `json:"AuthURL,omitempty"`
	TailscaleIPs   []string               `json:"TailscaleIPs"`
	Self           *PeerStatus            `json:"Self"`
	MagicDNSSuffix string                 `json:"MagicDNSSuffix,omitempty"`
	CertDomains    []string               `json:"CertDomains,omitempty"`
	Peer           map[string]*PeerStatus `json:"Peer,omitempty"`
	User           map[string]UserProfile `json:"User,omitempty"`
}

// PeerStatus describes one node in the tailnet, including the local node
// under Status.Self.
type PeerStatus struct {
	ID             string    `json:"ID"`
	PublicKey      string    `json:"PublicKey"`
	HostName       string    `json:"HostName"`
	DNSName        string    `json:"DNSName"`
	OS             string    `json:"OS"`
	UserID         int64     `json:"UserID"`
	TailscaleIPs   []string  `json:"TailscaleIPs"`
	Tags           []string  `json:"Tags,omitempty"`
	Addrs          []string  `json:"Addrs,omitempty"`
	CurAddr        string    `json:"CurAddr,omitempty"`
	Relay          string    `json:"Relay,omitempty"`
	RxBytes        int64     `json:"RxBytes"`
	TxBytes        int64     `json:"TxBytes"`
	Created        time.Time `json:"Created"`
	LastSeen       time.Time `json:"LastSeen"`
	LastHandshake  time.Time `json:"LastHandshake"`
	Online         bool      `json:"Online"`
	ExitNode       bool      `json:"ExitNode"`
	ExitNodeOption bool      `json:"ExitNodeOption"`
	Active         bool      `json:"Active"`
	InNetworkMap   bool      `json:"InNetworkMap"`
	InMagicSock    bool      `json:"InMagicSock"`
	InEngine       bool      `json:"InEngine"`
}

// UserProfile identifies a tailnet user as known to the daemon.
type UserProfile struct {
	ID            int64  `json:"ID"`
	LoginName     string `json:"LoginName"`
	DisplayName   string `json:"DisplayName"`
	ProfilePicURL string `json:"ProfilePicURL,omitempty"`
}

// Node is the control-plane record for a node, as returned by whois lookups.
type Node struct {
	ID         int64     `json:"ID"`
	StableID   string    `json:"StableID"`
	Name       string    `json:"Name"`
	User       int64     `json:"User"`
	Key        string    `json:"Key"`
	Addresses  []string  `json:"Addresses"`
	AllowedIPs []string  `json:"AllowedIPs"`
	Tags       []string  `json:"Tags,omitempty"`
	Created    time.Time `json:"Created"`
	Online     *bool     `json:"Online,omitempty"`
}

// WhoisResponse maps a tailnet address to the node and user that own it.
type WhoisResponse struct {
	Node        *Node                      `json:"Node"`
	UserProfile *UserProfile               `json:"UserProfile"`
	CapMap      map[string]json.RawMessage `json:"CapMap,omitempty"`
}

// CertPair holds the PEM-encoded certificate chain and private key issued
// for one of the node's domains.
type CertPair struct {
	CertPEM []byte
	KeyPEM  []byte
}
