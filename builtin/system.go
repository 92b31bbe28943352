package builtin

import (
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/ardnew/mung"

	"github.com/ardnew/formula"
)

// bindSystem installs host information, process environment access, and
// the filesystem, path, and mung namespaces.
func bindSystem(env map[string]formula.Result) {
	env["platform.os"] = formula.Str(hostOS())
	env["platform.arch"] = formula.Str(hostArch())
	env["hostname"] = formula.Str(hostname())
	env["user.name"] = formula.Str(username())

	env["cwd"] = formula.FuncOf(cwd)
	env["env"] = formula.FuncOf(processEnv)

	env["file.exists"] = pathPredicate("file.exists", fileExists)
	env["file.isdir"] = pathPredicate("file.isdir", fileIsDir)
	env["file.isregular"] = pathPredicate("file.isregular", fileIsRegular)

	env["path.abs"] = stringFunc("path.abs", pathAbs)
	env["path.base"] = stringFunc("path.base", filepath.Base)
	env["path.dir"] = stringFunc("path.dir", filepath.Dir)
	env["path.cat"] = formula.FuncOf(pathCat)
	env["path.rel"] = formula.FuncOf(pathRel)

	env["mung.prefix"] = formula.FuncOf(mungPrefix)
	env["mung.prefixif"] = formula.FuncOf(mungPrefixIf)
}

func hostOS() string {
	if o, ok := os.LookupEnv("GOOS"); ok {
		return o
	}

	return runtime.GOOS
}

func hostArch() string {
	if a, ok := os.LookupEnv("GOARCH"); ok {
		return a
	}

	return runtime.GOARCH
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}

	return name
}

func username() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}

	return u.Username
}

func cwd(args ...formula.Result) (formula.Result, error) {
	if len(args) != 0 {
		return formula.Null, errArity("cwd", "0", len(args))
	}

	dir, err := os.Getwd()
	if err != nil {
		return formula.Str(pathAbs(".")), nil
	}

	return formula.Str(dir), nil
}

// processEnv looks up a process environment variable; unset names yield
// the empty string, matching shell semantics.
func processEnv(args ...formula.Result) (formula.Result, error) {
	if len(args) != 1 {
		return formula.Null, errArity("env", "1", len(args))
	}

	key, err := argString("env", args, 0)
	if err != nil {
		return formula.Null, err
	}

	return formula.Str(os.Getenv(key)), nil
}

// pathPredicate adapts a filesystem predicate to a built-in callable.
func pathPredicate(name string, fn func(string) bool) formula.Result {
	return formula.FuncOf(func(args ...formula.Result) (formula.Result, error) {
		if len(args) != 1 {
			return formula.Null, errArity(name, "1", len(args))
		}

		path, err := argString(name, args, 0)
		if err != nil {
			return formula.Null, err
		}

		return formula.Bool(fn(path)), nil
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return !os.IsNotExist(err)
}

func fileIsDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func fileIsRegular(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

func pathAbs(path string) string {
	p, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return p
}

func pathCat(args ...formula.Result) (formula.Result, error) {
	elems := make([]string, len(args))

	for i := range args {
		s, err := argString("path.cat", args, i)
		if err != nil {
			return formula.Null, err
		}

		elems[i] = s
	}

	return formula.Str(filepath.Join(elems...)), nil
}

func pathRel(args ...formula.Result) (formula.Result, error) {
	if len(args) != 2 {
		return formula.Null, errArity("path.rel", "2", len(args))
	}

	from, err := argString("path.rel", args, 0)
	if err != nil {
		return formula.Null, err
	}

	to, err := argString("path.rel", args, 1)
	if err != nil {
		return formula.Null, err
	}

	p, err := filepath.Rel(pathAbs(from), pathAbs(to))
	if err != nil {
		return formula.Str(filepath.Join(from, to)), nil
	}

	return formula.Str(p), nil
}

// mungPrefix prepends elements to a PATH-like list, deduplicating entries.
func mungPrefix(args ...formula.Result) (formula.Result, error) {
	if len(args) < 1 {
		return formula.Null, errArity("mung.prefix", "1 or more", len(args))
	}

	subject, err := argString("mung.prefix", args, 0)
	if err != nil {
		return formula.Null, err
	}

	prefix := make([]string, len(args)-1)

	for i := 1; i < len(args); i++ {
		s, err := argString("mung.prefix", args, i)
		if err != nil {
			return formula.Null, err
		}

		prefix[i-1] = s
	}

	return formula.Str(mung.Make(
		mung.WithSubjectItems(subject),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()), nil
}

// mungPrefixIf is mung.prefix with a caller-supplied filter. The filter is
// itself a formula callable taking one string and returning a boolean;
// entries it rejects are dropped from the result.
func mungPrefixIf(args ...formula.Result) (formula.Result, error) {
	if len(args) < 2 {
		return formula.Null, errArity("mung.prefixif", "2 or more", len(args))
	}

	subject, err := argString("mung.prefixif", args, 0)
	if err != nil {
		return formula.Null, err
	}

	if args[1].Kind() != formula.KindFunc {
		return formula.Null, formula.ErrTypeMismatch.With(
			slog.String("function", "mung.prefixif"),
			slog.Int("argument", 2),
			slog.String("want", formula.KindFunc.String()),
			slog.String("got", args[1].Kind().String()),
		)
	}

	predicate := args[1].Callable()

	prefix := make([]string, len(args)-2)

	for i := 2; i < len(args); i++ {
		s, err := argString("mung.prefixif", args, i)
		if err != nil {
			return formula.Null, err
		}

		prefix[i-2] = s
	}

	var failed error

	keep := func(item string) bool {
		if failed != nil {
			return false
		}

		v, err := predicate(formula.Str(item))
		if err != nil {
			failed = err

			return false
		}

		return v.Kind() == formula.KindBool && v.Truth()
	}

	out := mung.Make(
		mung.WithSubjectItems(subject),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
		mung.WithFilter(keep),
	).String()

	if failed != nil {
		return formula.Null, failed
	}

	return formula.Str(out), nil
}
