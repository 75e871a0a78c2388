package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

// Debug emits one JSON log line for the given service.
func Debug(service string, message string) {
	DebugWith(service, message, nil)
}

// DebugWith is Debug with extra context fields attached to the line.
func DebugWith(service string, message string, context Context) {
	if context == nil {
		context = make(Context)
	}

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Println(string(data))
}
