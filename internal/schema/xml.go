// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

// Package schema adapts the external schema engines used at the VERYSTRICT
// validation level: an XML Schema engine that fetches the reference schema
// over HTTP, and a JSON Schema engine over the bundled GeoJSON schema set.
package schema

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jacoelho/xsd"
)

// defaultFetchTimeout bounds each schema document fetch when the caller does
// not supply a configured HTTP client. The validation call itself carries
// no deadline; an overall bound is the caller's concern.
const defaultFetchTimeout = 30 * time.Second

// XMLValidator validates XML documents against an XML Schema fetched from a
// URL. It implements the validator.XMLSchemaEngine contract.
//
// Reference schemas such as the OGC GML base schema pull in further
// documents through xs:import/xs:include; those locations are resolved
// relative to the referencing schema's URL and fetched with the same HTTP
// client.
type XMLValidator struct {
	client *resty.Client
}

// NewXMLValidator constructs an XMLValidator. A nil client gets a default
// resty client with [defaultFetchTimeout].
func NewXMLValidator(client *resty.Client) *XMLValidator {
	if client == nil {
		client = resty.New().SetTimeout(defaultFetchTimeout)
	}
	return &XMLValidator{client: client}
}

// Validate fetches the schema document at schemaURL, compiles it, and
// validates doc against it. Everything (fetch failure, non-2xx status,
// unresolvable import, compile error, schema violation) is returned as an
// error.
func (x *XMLValidator) Validate(ctx context.Context, schemaURL string, doc io.Reader) error {
	root, err := x.fetch(ctx, schemaURL)
	if err != nil {
		return err
	}

	engine, err := xsd.Compile(ctx, xsd.Bytes(schemaURL, root).WithResolver(x.resolver()))
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", schemaURL, err)
	}

	if err := engine.Validate(ctx, doc); err != nil {
		return fmt.Errorf("document does not conform to %s: %w", schemaURL, err)
	}
	return nil
}

// fetch retrieves one schema document over HTTP.
func (x *XMLValidator) fetch(ctx context.Context, schemaURL string) ([]byte, error) {
	resp, err := x.client.R().SetContext(ctx).Get(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("fetch schema %s: %w", schemaURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch schema %s: unexpected status %s", schemaURL, resp.Status())
	}
	return resp.Body(), nil
}

// resolver fetches xs:import/xs:include locations relative to the
// referencing schema document. The resolved URL names the source, so
// references reached from it resolve against the right base in turn.
func (x *XMLValidator) resolver() xsd.Resolver {
	return xsd.ResolverFunc(func(ctx context.Context, base, location string) (xsd.SchemaSource, error) {
		resolved, err := resolveLocation(base, location)
		if err != nil {
			return xsd.SchemaSource{}, err
		}

		data, err := x.fetch(ctx, resolved)
		if err != nil {
			return xsd.SchemaSource{}, err
		}
		return xsd.Bytes(resolved, data), nil
	})
}

func resolveLocation(base, location string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse schema base %q: %w", base, err)
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("parse schema location %q: %w", location, err)
	}
	return baseURL.ResolveReference(ref).String(), nil
}
