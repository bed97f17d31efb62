package prestashop

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Keys used in decoded trees for attributes and mixed text content.
const (
	attrPrefix = "@"
	textKey    = "#text"
)

var errNoRootElement = errors.New("document has no root element")

// decodeTree converts an XML document into nested maps.
//
//   - attributes become "@prefix:name" keys
//   - an element with only text becomes a string
//   - an element with neither text, attributes nor children becomes nil
//   - text next to attributes or children is stored under "#text"
//   - repeated child elements become a []any in document order
//
// An empty or whitespace-only input yields an empty map.
func decodeTree(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil {
		return nil, errNoRootElement
	}
	return map[string]any{root.FullTag(): elementValue(root)}, nil
}

func elementValue(el *etree.Element) any {
	text := strings.TrimSpace(charData(el))
	children := el.ChildElements()

	if len(el.Attr) == 0 && len(children) == 0 {
		if text == "" {
			return nil
		}
		return text
	}

	node := make(map[string]any, len(el.Attr)+len(children)+1)
	for _, a := range el.Attr {
		node[attrPrefix+a.FullKey()] = a.Value
	}
	for _, child := range children {
		key := child.FullTag()
		value := elementValue(child)

		existing, seen := node[key]
		if !seen {
			node[key] = value
			continue
		}
		if list, ok := existing.([]any); ok {
			node[key] = append(list, value)
		} else {
			node[key] = []any{existing, value}
		}
	}
	if text != "" {
		node[textKey] = text
	}
	return node
}

func charData(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return sb.String()
}

// orderHistoryPayload builds the order_history document that records a
// state change.
func orderHistoryPayload(orderID string, employeeID, stateID int) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("prestashop")
	root.CreateAttr("xmlns:xlink", "http://www.w3.org/1999/xlink")

	history := root.CreateElement("order_history")
	history.CreateElement("id_order").SetText(orderID)
	history.CreateElement("id_employee").SetText(strconv.Itoa(employeeID))
	history.CreateElement("id_order_state").SetText(strconv.Itoa(stateID))

	doc.Indent(4)
	return doc.WriteToBytes()
}
