// internal/assets/shaders.go
package assets

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-space-shooter/pkg/render"
)

//go:embed shaders/*.kage
var embedded embed.FS

// ShaderExt — расширение исходников шейдеров.
const ShaderExt = ".kage"

const includeDirective = "//#include"

var (
	ErrIncludeCycle  = errors.New("shader include cycle")
	ErrInvalidShader = errors.New("invalid shader source")
)

type cachedShader struct {
	source []byte
	digest uint64
}

// ShaderLibrary отдаёт исходники шейдеров по имени из файловой системы,
// подставляя //#include "file" относительно её корня. Результат кэшируется
// до Reload.
type ShaderLibrary struct {
	fsys   fs.FS
	origin string
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string]cachedShader
}

// NewShaderLibrary создаёт библиотеку поверх произвольной fs.FS.
func NewShaderLibrary(fsys fs.FS, origin string, logger *zap.Logger) *ShaderLibrary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShaderLibrary{
		fsys:   fsys,
		origin: origin,
		logger: logger.With(zap.String("shaders", origin)),
		cache:  make(map[string]cachedShader),
	}
}

// Embedded — шейдеры, вшитые в бинарник.
func Embedded(logger *zap.Logger) *ShaderLibrary {
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(err)
	}
	return NewShaderLibrary(sub, "embedded", logger)
}

// Directory — шейдеры из каталога на диске, для правки без пересборки.
func Directory(dir string, logger *zap.Logger) *ShaderLibrary {
	return NewShaderLibrary(os.DirFS(dir), dir, logger)
}

// Shader возвращает исходник с подставленными include.
func (l *ShaderLibrary) Shader(name string) ([]byte, error) {
	l.mu.Lock()
	cached, ok := l.cache[name]
	l.mu.Unlock()
	if ok {
		return cached.source, nil
	}

	src, err := l.resolve(name)
	if err != nil {
		return nil, err
	}
	l.store(name, src)
	return src, nil
}

// Preload читает несколько шейдеров параллельно и кладёт их в кэш.
// Возвращает первую ошибку.
func (l *ShaderLibrary) Preload(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := l.resolve(name)
			if err != nil {
				return err
			}
			l.store(name, src)
			return nil
		})
	}
	return g.Wait()
}

// Reload сбрасывает кэш, перечитывает ранее загруженные шейдеры и возвращает
// имена тех, чьё содержимое изменилось. Ошибка чтения не портит кэш: старые
// значения остаются у тех шейдеров, которые перечитать не удалось.
func (l *ShaderLibrary) Reload(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	previous := l.cache
	l.cache = make(map[string]cachedShader, len(previous))
	l.mu.Unlock()

	names := make([]string, 0, len(previous))
	for name := range previous {
		names = append(names, name)
	}
	err := l.Preload(ctx, names...)

	var changed []string
	l.mu.Lock()
	for name, old := range previous {
		cur, ok := l.cache[name]
		if !ok {
			l.cache[name] = old
			continue
		}
		if cur.digest != old.digest {
			changed = append(changed, name)
		}
	}
	l.mu.Unlock()
	sort.Strings(changed)
	if len(changed) > 0 {
		l.logger.Info("shaders changed", zap.Strings("names", changed))
	}
	return changed, err
}

// Digest — xxhash последней загруженной версии шейдера.
func (l *ShaderLibrary) Digest(name string) (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.cache[name]
	return c.digest, ok
}

func (l *ShaderLibrary) store(name string, src []byte) {
	digest := xxhash.Sum64(src)
	l.mu.Lock()
	l.cache[name] = cachedShader{source: src, digest: digest}
	l.mu.Unlock()
	l.logger.Debug("shader loaded", zap.String("name", name), zap.Int("bytes", len(src)), zap.Uint64("xxhash", digest))
}

func (l *ShaderLibrary) resolve(name string) ([]byte, error) {
	var out bytes.Buffer
	if err := l.expand(name+ShaderExt, nil, &out); err != nil {
		return nil, fmt.Errorf("shader %q from %s: %w", name, l.origin, err)
	}
	return out.Bytes(), nil
}

func (l *ShaderLibrary) expand(file string, stack []string, out *bytes.Buffer) error {
	for _, f := range stack {
		if f == file {
			return fmt.Errorf("%s -> %s: %w", strings.Join(stack, " -> "), file, ErrIncludeCycle)
		}
	}
	if !fs.ValidPath(file) {
		return fmt.Errorf("%s: %w", file, ErrInvalidShader)
	}
	data, err := fs.ReadFile(l.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", file, render.ErrShaderNotFound)
	}
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 || !utf8.Valid(data) {
		return fmt.Errorf("%s: %w", file, ErrInvalidShader)
	}

	stack = append(stack, file)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		target, ok := parseInclude(line)
		if !ok {
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}
		// include задаётся относительно подключающего файла
		target = path.Join(path.Dir(file), target)
		if err := l.expand(target, stack, out); err != nil {
			return err
		}
	}
	return sc.Err()
}

func parseInclude(line string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), includeDirective)
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}
