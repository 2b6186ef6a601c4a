package scanner

import (
	"testing"
)

const outlineFixture = `using System;

namespace Demo
{
    public class Person
    {
        public string Name { get; set; }

        public int Age => years;

        public string Describe(int depth)
        {
            var s = Format(Name);
            return s;
        }

        private int years;
    }
}`

func TestOutline_MembersInSourceOrder(t *testing.T) {
	doc := docOf(outlineFixture)

	members := Outline(doc, "public")
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d: %+v", len(members), members)
	}

	if members[0].Kind != "property" || members[0].Name != "Name" {
		t.Errorf("member 0: expected property Name, got %+v", members[0])
	}
	if members[1].Kind != "expression-property" || members[1].Name != "Age" {
		t.Errorf("member 1: expected expression-property Age, got %+v", members[1])
	}
	if members[2].Kind != "method" || members[2].Name != "Describe" {
		t.Errorf("member 2: expected method Describe, got %+v", members[2])
	}
}

func TestOutline_SignaturesAreModifierStripped(t *testing.T) {
	doc := docOf(outlineFixture)

	members := Outline(doc, "public")
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	if members[0].Signature != "string Name { get; set; }" {
		t.Errorf("unexpected property signature %q", members[0].Signature)
	}
	if members[2].Signature != "string Describe(int depth)" {
		t.Errorf("unexpected method signature %q", members[2].Signature)
	}
}

func TestOutline_MethodSpanCoversBody(t *testing.T) {
	doc := docOf(outlineFixture)

	members := Outline(doc, "public")
	m := members[2]
	if m.StartLine != 10 || m.EndLine != 14 {
		t.Errorf("expected method span [10,14], got [%d,%d]", m.StartLine, m.EndLine)
	}
}

func TestOutline_BodyCallsAreNotMembers(t *testing.T) {
	doc := docOf(outlineFixture)

	for _, m := range Outline(doc, "public") {
		if m.Name == "Format" {
			t.Errorf("call inside a method body reported as a member: %+v", m)
		}
	}
}

func TestOutline_OtherModifier(t *testing.T) {
	doc := docOf(outlineFixture)

	members := Outline(doc, "private")
	// "private int years;" is a field, not a method or property.
	if len(members) != 0 {
		t.Errorf("expected no private members, got %+v", members)
	}
}

func TestOutline_EmptyDocument(t *testing.T) {
	doc := docOf("")

	if members := Outline(doc, "public"); len(members) != 0 {
		t.Errorf("expected no members, got %+v", members)
	}
}
