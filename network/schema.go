package network

import (
	"encoding/json"
	"net/http"

	"github.com/invopop/jsonschema"
)

// ProtocolSchema describes both frame directions
type ProtocolSchema struct {
	Request  *jsonschema.Schema `json:"request"`
	Response *jsonschema.Schema `json:"response"`
}

// BuildSchema reflects the JSON schema of Request and Response
func BuildSchema() *ProtocolSchema {
	reflector := jsonschema.Reflector{}

	req := reflector.Reflect(new(Request))
	req.Title = "Worm Request"
	req.Description = "Client frame; op selects which fields are read"

	resp := reflector.Reflect(new(Response))
	resp.Title = "Worm Response"
	resp.Description = "Server reply; state is present once a worm is spawned"

	return &ProtocolSchema{Request: req, Response: resp}
}

// MarshalSchema returns the indented protocol schema document
func MarshalSchema() ([]byte, error) {
	data, err := json.MarshalIndent(BuildSchema(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	data, err := MarshalSchema()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	_, _ = w.Write(data)
}
