package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"tailctl/localapi"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func renderStatus(w io.Writer, status *localapi.Status, colorize bool) {
	fmt.Fprintf(w, "backend: %s\n", status.BackendState)
	if status.Self != nil {
		fmt.Fprintf(w, "self:    %s (%s)\n", status.Self.HostName, strings.Join(status.Self.TailscaleIPs, ", "))
	}
	if len(status.CertDomains) > 0 {
		fmt.Fprintf(w, "domains: %s\n", strings.Join(status.CertDomains, ", "))
	}

	if len(status.Peer) == 0 {
		return
	}

	peers := make([]*localapi.PeerStatus, 0, len(status.Peer))
	for _, peer := range status.Peer {
		peers = append(peers, peer)
	}
	sort.Slice(peers, func(i, j int) bool {
		return peers[i].HostName < peers[j].HostName
	})

	rows := make([][]string, 0, len(peers))
	for _, peer := range peers {
		ip := ""
		if len(peer.TailscaleIPs) > 0 {
			ip = peer.TailscaleIPs[0]
		}
		rows = append(rows, []string{
			peer.HostName,
			ip,
			peer.OS,
			onlineLabel(peer.Online, colorize),
			lastSeenLabel(peer),
			yesNo(peer.ExitNode),
		})
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, renderTable(
		[]string{"HOSTNAME", "IP", "OS", "STATE", "LAST SEEN", "EXIT NODE"},
		rows,
	))
}

func onlineLabel(online bool, colorize bool) string {
	if online {
		if colorize {
			return ansiGreen + "online" + ansiReset
		}
		return "online"
	}
	if colorize {
		return ansiRed + "offline" + ansiReset
	}
	return "offline"
}

func lastSeenLabel(peer *localapi.PeerStatus) string {
	if peer.Online {
		return "now"
	}
	if peer.LastSeen.IsZero() {
		return "-"
	}
	return peer.LastSeen.UTC().Format(time.RFC3339)
}
