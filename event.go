package ber

/*
event.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags ber_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags ber_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType uint16

const (
	EventNone EventType = 0      // no events
	EventAll  EventType = 0xFFFF // all events (use with caution)
)

const (
	EventEnter      EventType = 1 << iota //    1: function entry
	EventExit                             //    2: function exit
	EventIdentifier                       //    4: tag/PC byte decode
	EventLength                           //    8: length octet decode
	EventTLV                              //   16: bounded TLV entry/exit (read_general)
	EventOptional                         //   32: read_optional backtracking
	EventComposite                        //   64: SEQUENCE/SET cursor operations
	EventError                            //  128: a decode failed
)
