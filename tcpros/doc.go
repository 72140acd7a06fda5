/*
Package tcpros implements the byte layouts TCPROS puts around messages: the
connection header exchanged when a publisher and a subscriber connect, and the
length-prefixed frames each message travels in.

Only io.Reader and io.Writer are used. Dialing, listening and topic discovery
belong to the caller.
*/
package tcpros
