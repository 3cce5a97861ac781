// Package localetext supplies the placeholder phrases sections display while
// they hold no value. Catalogs are plain YAML or JSON documents keyed by
// section type; the package embeds a small set of locales and accepts caller
// filesystems for the rest.
package localetext
