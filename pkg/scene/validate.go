package scene

import "fmt"

// ValidationError describes a single problem found in a Spec. Message
// carries enough context (part name, node kind) to locate the offending
// node without a node-ID scheme.
type ValidationError struct {
	Part    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Part == "" {
		return e.Message
	}
	return fmt.Sprintf("part %q: %s", e.Part, e.Message)
}

// Validate checks structural well-formedness of a Spec: duplicate part
// names, nil/missing roots, wrong child counts, and non-positive
// dimensions. It is read-only and never mutates the spec. An empty slice
// means the spec is valid.
func Validate(s Spec) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(s.Parts))
	for _, part := range s.Parts {
		if part.Name == "" {
			errs = append(errs, ValidationError{Message: "part has no name"})
		} else if seen[part.Name] {
			errs = append(errs, ValidationError{Part: part.Name, Message: "duplicate part name"})
		}
		seen[part.Name] = true

		if part.Root == nil {
			errs = append(errs, ValidationError{Part: part.Name, Message: "part has no construction tree"})
			continue
		}
		errs = append(errs, validateNode(part.Name, part.Root)...)
	}

	return errs
}

func validateNode(part string, n *Node) []ValidationError {
	var errs []ValidationError

	switch n.Kind {
	case NodeBox:
		for axis, v := range n.Size {
			if v <= 0 {
				errs = append(errs, ValidationError{Part: part, Message: fmt.Sprintf("box has non-positive size on axis %d: %g", axis, v)})
			}
		}
	case NodeCylinder:
		if n.Height <= 0 {
			errs = append(errs, ValidationError{Part: part, Message: fmt.Sprintf("cylinder has non-positive height: %g", n.Height)})
		}
		if n.Radius <= 0 {
			errs = append(errs, ValidationError{Part: part, Message: fmt.Sprintf("cylinder has non-positive radius: %g", n.Radius)})
		}
	case NodeUnion, NodeDifference, NodeIntersection:
		if len(n.Children) != 2 {
			errs = append(errs, ValidationError{Part: part, Message: fmt.Sprintf("%s requires exactly 2 children, got %d", n.Kind, len(n.Children))})
		}
	case NodeTranslate, NodeRotate:
		if len(n.Children) != 1 {
			errs = append(errs, ValidationError{Part: part, Message: fmt.Sprintf("%s requires exactly 1 child, got %d", n.Kind, len(n.Children))})
		}
	default:
		errs = append(errs, ValidationError{Part: part, Message: fmt.Sprintf("unknown node kind %d", n.Kind)})
	}

	for _, c := range n.Children {
		if c == nil {
			errs = append(errs, ValidationError{Part: part, Message: fmt.Sprintf("%s has a nil child", n.Kind)})
			continue
		}
		errs = append(errs, validateNode(part, c)...)
	}

	return errs
}
