package schemes

// Official is a sorted list of IANA-registered URI schemes. It is a
// curated subset wide enough to classify the schemes seen in ordinary
// text, not an exhaustive mirror of the registry.
//
// Source: https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml
var Official = []string{
	`coap`, `coaps`, `data`, `dns`, `ftp`, `ftps`, `git`, `http`, `https`,
	`imap`, `irc`, `ircs`, `ldap`, `ldaps`, `mqtt`, `nfs`, `nntp`, `ntp`,
	`pop`, `rtmp`, `rtsp`, `sftp`, `sip`, `sips`, `smb`, `smtp`, `snmp`,
	`ssh`, `stun`, `stuns`, `telnet`, `turn`, `turns`, `udp`, `urn`,
	`vnc`, `ws`, `wss`,
}
