/*
Package resource maps textual resource identifiers to lazily opened byte
streams.

An identifier has the form "<protocol>://<payload>". Identifiers without a
protocol are given the loader's default protocol, "file" unless configured
otherwise. Each protocol is served by a Constructor registered with the
Loader; constructing a resource never opens the underlying stream.

# Built-in protocols

	file://      files on a core.ReadFS (the local disk by default)
	http://      resources fetched with net/http
	https://
	assembly://  resources inside named bundles: assembly://<bundle>/<namespace>/<name>
	config://    sections of the host configuration store, rendered as YAML
	s3://        objects in S3-compatible storage (when buckets are configured)

# Usage

	loader := resource.NewLoader(
	    resource.WithLogger(logger),
	    resource.WithBundles(bundles),
	)

	res, err := loader.GetResource("assembly://app/templates.mail/welcome.txt")
	if err != nil {
	    return err
	}

	rc, err := res.Open(ctx)
	if err != nil {
	    return err
	}
	defer rc.Close()

# Relative resources

Resources that implement Navigable can be used as the base for relative
identifiers:

	base, _ := loader.GetResource("https://example.com/docs/guide/index.html")
	img, _ := loader.ResolveRelative(base, "../images/logo.png")
	// img.Location() == "https://example.com/docs/images/logo.png"

# Errors

Failures are errors.PlatformError values. Callers branch on the code:

	if errors.HasCode(err, errors.CodeNotFound) {
	    // treat as absent
	}

Only CodeIOFailure is classified as retryable. The loader never retries.
*/
package resource
