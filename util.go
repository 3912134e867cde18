package schedbridge

import (
	"net"
	"strings"
)

func localIP4String() string {
	addrs, _ := net.InterfaceAddrs()
	for _, addr := range addrs {
		switch addr.(type) {
		case *net.IPNet:
			ip := addr.(*net.IPNet)
			if !ip.IP.IsLoopback() && ip.IP.To4() != nil {
				return ip.String()[:strings.LastIndex(ip.String(), "/")]
			}
		}
	}
	return "127.0.0.1"
}
