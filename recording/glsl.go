package recording

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/teapot/glctx/gl"
)

// declaration is one top-level in/out/uniform variable of a shader stage.
type declaration struct {
	storage  string // "in", "out" or "uniform"
	typ      string
	name     string
	location int32 // explicit layout location, or -1
	line     int
}

// sourceInfo is what a successful compile learns about a stage.
type sourceInfo struct {
	version string
	decls   []declaration
	// body is the comment-free source used to decide which declarations
	// are referenced.
	body string
}

var (
	versionRe   = regexp.MustCompile(`^#version\s+(\d+)(?:\s+(es|core|compatibility))?\s*$`)
	mainRe      = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(?:void)?\s*\)`)
	precisionRe = regexp.MustCompile(`\bprecision\s+(?:lowp|mediump|highp)\s+float\s*;`)
	declRe      = regexp.MustCompile(`^\s*(?:layout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*)?` +
		`(?:(?:flat|smooth|centroid)\s+)?(in|out|attribute|varying|uniform)\s+` +
		`(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
)

// stripComments removes // and /* */ comments while keeping line breaks so
// diagnostics report the original line numbers.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		switch {
		case strings.HasPrefix(src[i:], "//"):
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				b.WriteByte('\n')
			}
		case strings.HasPrefix(src[i:], "/*"):
			i += 2
			for i < len(src) && !strings.HasPrefix(src[i:], "*/") {
				if src[i] == '\n' {
					b.WriteByte('\n')
				}
				i++
			}
			i++
		default:
			b.WriteByte(src[i])
		}
	}
	return b.String()
}

// compileSource checks src as a shader of the given stage. It returns the
// reflected declarations and, when the source is rejected, a non-empty
// diagnostic list in the "0:line: message" form drivers use.
func compileSource(stage uint32, src string) (sourceInfo, []string) {
	var diags []string
	errorf := func(line int, format string, args ...any) {
		diags = append(diags, fmt.Sprintf("ERROR: 0:%d: ", line)+fmt.Sprintf(format, args...))
	}

	body := stripComments(src)
	lines := strings.Split(body, "\n")
	info := sourceInfo{body: body}

	if strings.TrimSpace(body) == "" {
		errorf(0, "'' : empty shader source")
		return info, diags
	}

	// The version directive must come first.
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		m := versionRe.FindStringSubmatch(l)
		if m == nil {
			errorf(i+1, "'#version' : missing or malformed version directive")
			break
		}
		info.version = m[1]
		if m[2] != "" {
			info.version += " " + m[2]
		}
		break
	}

	checkDelimiters(lines, errorf)

	if !mainRe.MatchString(body) {
		errorf(len(lines), "'main' : function not defined")
	}

	es := strings.HasSuffix(info.version, " es")
	if stage == gl.FRAGMENT_SHADER && es && !precisionRe.MatchString(body) {
		errorf(1, "'' : No precision specified for (float)")
	}

	for i, l := range lines {
		m := declRe.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		d := declaration{typ: m[3], name: m[4], location: -1, line: i + 1}
		switch m[2] {
		case "attribute":
			if stage != gl.VERTEX_SHADER {
				errorf(i+1, "'attribute' : supported in vertex shaders only")
				continue
			}
			d.storage = "in"
		case "varying":
			if stage == gl.VERTEX_SHADER {
				d.storage = "out"
			} else {
				d.storage = "in"
			}
		default:
			d.storage = m[2]
		}
		if m[1] != "" {
			loc, err := strconv.Atoi(m[1])
			if err != nil {
				errorf(i+1, "'location' : invalid value %q", m[1])
				continue
			}
			d.location = int32(loc)
		}
		info.decls = append(info.decls, d)
	}

	return info, diags
}

// checkDelimiters reports unbalanced (), [] and {} pairs.
func checkDelimiters(lines []string, errorf func(int, string, ...any)) {
	type open struct {
		ch   byte
		line int
	}
	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}
	var stack []open
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "#") {
			continue
		}
		for j := 0; j < len(l); j++ {
			c := l[j]
			switch c {
			case '(', '[', '{':
				stack = append(stack, open{c, i + 1})
			case ')', ']', '}':
				if len(stack) == 0 || stack[len(stack)-1].ch != pairs[c] {
					errorf(i+1, "'%c' : syntax error, unexpected closing delimiter", c)
					return
				}
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		errorf(len(lines), "'%c' : unexpected end of file, unclosed delimiter from line %d", top.ch, top.line)
	}
}

// referenced reports whether name appears in body outside its declaration.
func referenced(body, name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return len(re.FindAllStringIndex(body, 2)) > 1
}

// uniformComponents returns how many floats a uniform of typ holds, or 0
// for types the recorder does not model.
func uniformComponents(typ string) int {
	switch typ {
	case "float", "int", "bool", "sampler2D", "samplerCube":
		return 1
	case "vec2":
		return 2
	case "vec3":
		return 3
	case "vec4", "mat2":
		return 4
	case "mat3":
		return 9
	case "mat4":
		return 16
	default:
		return 0
	}
}

// isSampler reports whether typ is set with Uniform1i as a texture unit.
func isSampler(typ string) bool {
	return strings.HasPrefix(typ, "sampler")
}
