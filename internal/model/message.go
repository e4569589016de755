package model

import "fmt"

var announcements = map[Status]string{
	StatusOpen:   "The lab is now open! Come on by.",
	StatusClosed: "The lab is now closed. See you next time.",
	StatusFire:   "The lab is on fire! Stay away.",
	StatusCoffee: "Coffee break! The lab will be back shortly.",
}

// Announcement returns the chat message for a status change to s.
func Announcement(s Status) string {
	if msg, ok := announcements[s]; ok {
		return msg
	}
	return fmt.Sprintf("Lab is %s", s)
}
