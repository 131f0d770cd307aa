// Package telegram binds the controller to the Telegram Bot API. It runs the
// long-poll update loop, dispatches commands (/start, /search) and inline
// keyboard callbacks, acknowledges every button press and converts
// transport-neutral core.Reply values into Telegram messages with inline
// keyboards.
package telegram
