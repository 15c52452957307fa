package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/crateful/wirecat/ir"
)

// Encode writes the wire form of a tree, the inverse of Decode.  An
// object field with a null value emits a self-closing element, an array
// value re-emits the wrapping tag once per element, and any other value
// emits one wrapped element.  A bare array nested directly inside
// another array fails with ErrUnsupportedStructure: the wire format has
// no way to tag it unambiguously.
func Encode(y *ir.Node, w io.Writer) error {
	buf := bytes.NewBuffer(nil)
	if err := encodeNode(buf, y); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Bytes returns the wire form of a tree.
func Bytes(y *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encodeNode(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(buf *bytes.Buffer, y *ir.Node) error {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.ObjectType:
		for i, tag := range y.Fields {
			v := y.Values[i]
			switch {
			case v.IsNull():
				fmt.Fprintf(buf, "<%s/>", tag)
			case v.Type == ir.ArrayType:
				for _, e := range v.Values {
					if err := encodeWrapped(buf, tag, e); err != nil {
						return err
					}
				}
			default:
				if err := encodeWrapped(buf, tag, v); err != nil {
					return err
				}
			}
		}
		return nil
	case ir.ArrayType:
		return fmt.Errorf("%w: unable to properly tag nested lists", ErrUnsupportedStructure)
	case ir.NullType:
		return nil
	default:
		return xml.EscapeText(buf, []byte(y.String))
	}
}

func encodeWrapped(buf *bytes.Buffer, tag string, y *ir.Node) error {
	fmt.Fprintf(buf, "<%s>", tag)
	if err := encodeNode(buf, y); err != nil {
		return err
	}
	fmt.Fprintf(buf, "</%s>", tag)
	return nil
}
