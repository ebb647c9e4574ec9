package schema

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const noteSchema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" elementFormDefault="qualified">
  <xs:element name="note">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="body" type="xs:string"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

const envelopeSchema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:c="urn:example:child" elementFormDefault="qualified">
  <xs:import namespace="urn:example:child" schemaLocation="child.xsd"/>
  <xs:element name="envelope">
    <xs:complexType>
      <xs:sequence>
        <xs:element ref="c:payload"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

const payloadSchema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:example:child" elementFormDefault="qualified">
  <xs:element name="payload" type="xs:string"/>
</xs:schema>`

func newSchemaServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestXMLValidator_Validate(t *testing.T) {
	srv := newSchemaServer(t, http.StatusOK, noteSchema)
	v := NewXMLValidator(nil)

	doc := strings.NewReader(`<note><body>hello</body></note>`)
	require.NoError(t, v.Validate(context.Background(), srv.URL, doc))
}

func TestXMLValidator_ValidateImportingSchema(t *testing.T) {
	// the GML base schema imports further documents by relative
	// schemaLocation, so the import path has to resolve against the root
	// schema's URL and fetch from the same host
	mux := http.NewServeMux()
	mux.HandleFunc("/root.xsd", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(envelopeSchema))
	})
	mux.HandleFunc("/child.xsd", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payloadSchema))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	v := NewXMLValidator(nil)

	t.Run("conforming document", func(t *testing.T) {
		doc := strings.NewReader(`<envelope xmlns:c="urn:example:child"><c:payload>hello</c:payload></envelope>`)
		require.NoError(t, v.Validate(context.Background(), srv.URL+"/root.xsd", doc))
	})

	t.Run("document violating the imported schema", func(t *testing.T) {
		doc := strings.NewReader(`<envelope><wrong>hello</wrong></envelope>`)
		require.Error(t, v.Validate(context.Background(), srv.URL+"/root.xsd", doc))
	})
}

func TestXMLValidator_ValidateUnresolvableImport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/root.xsd", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(envelopeSchema))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	v := NewXMLValidator(nil)

	doc := strings.NewReader(`<envelope xmlns:c="urn:example:child"><c:payload>hello</c:payload></envelope>`)
	require.Error(t, v.Validate(context.Background(), srv.URL+"/root.xsd", doc))
}

func TestXMLValidator_ValidateNonConformingDocument(t *testing.T) {
	srv := newSchemaServer(t, http.StatusOK, noteSchema)
	v := NewXMLValidator(nil)

	doc := strings.NewReader(`<note><subject>wrong element</subject></note>`)
	require.Error(t, v.Validate(context.Background(), srv.URL, doc))
}

func TestXMLValidator_ValidateMalformedSchema(t *testing.T) {
	srv := newSchemaServer(t, http.StatusOK, `this is not an xml schema`)
	v := NewXMLValidator(nil)

	doc := strings.NewReader(`<note><body>hello</body></note>`)
	require.Error(t, v.Validate(context.Background(), srv.URL, doc))
}

func TestXMLValidator_ValidateSchemaFetchFailures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := newSchemaServer(t, http.StatusNotFound, "gone")
		v := NewXMLValidator(nil)

		err := v.Validate(context.Background(), srv.URL, strings.NewReader(`<note/>`))
		require.Error(t, err)
	})

	t.Run("unreachable host", func(t *testing.T) {
		v := NewXMLValidator(nil)

		err := v.Validate(context.Background(), "http://unreachable.invalid/gml.xsd", strings.NewReader(`<note/>`))
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := newSchemaServer(t, http.StatusOK, noteSchema)
		v := NewXMLValidator(nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := v.Validate(ctx, srv.URL, strings.NewReader(`<note/>`))
		require.Error(t, err)
	})
}
