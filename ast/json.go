package ast

import (
	"encoding/json"
	"errors"
)

// MarshalJSON encodes an atom as a JSON string and a list as a JSON array.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Type() {
	case NodeTypeAtom:
		return json.Marshal(n.text)
	case NodeTypeList:
		return json.Marshal(n.children)
	}
	return nil, errors.New("ast: cannot marshal invalid node")
}
