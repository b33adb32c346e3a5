package config

import (
	"testing"
	"time"

	"github.com/clipseek/clipseek/filesystem"
	"github.com/clipseek/clipseek/key"
	"github.com/clipseek/clipseek/search"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.SearchPageSize), ShouldEqual, 50)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("search.page_size"), ShouldEqual, "search_page_size")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		f := Default[key.SearchMaxPages]

		Convey("Env is prefixed with the application name", func() {
			So(f.Env(), ShouldEqual, "CLIPSEEK_SEARCH_MAX_PAGES")
		})

		Convey("JSON includes the default and type", func() {
			b, err := f.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"type":"int"`)
			So(string(b), ShouldContainSubstring, `"default":3`)
		})

		Convey("Pretty renders the key", func() {
			So(f.Pretty(), ShouldContainSubstring, key.SearchMaxPages)
		})
	})
}

func TestDerivedSettings(t *testing.T) {
	Convey("Derived settings", t, func() {
		_ = Setup()

		Convey("Search settings follow the provider defaults", func() {
			So(SearchSettings(), ShouldResemble, search.DefaultSettings())
		})

		Convey("Timeouts are expressed in seconds", func() {
			viper.Set(key.NetworkTimeout, 15)
			So(NetworkTimeout(), ShouldEqual, 15*time.Second)

			viper.Set(key.NetworkTimeout, 0)
			So(NetworkTimeout(), ShouldEqual, time.Duration(0))

			viper.Set(key.NetworkTimeout, Default[key.NetworkTimeout].Value)
		})
	})
}
