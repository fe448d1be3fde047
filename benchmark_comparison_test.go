package happydom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	simpleHTML = `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<div id="main">
<p class="intro">Hello, World!</p>
<ul>
<li>Item 1</li>
<li>Item 2</li>
<li>Item 3</li>
</ul>
</div>
</body>
</html>`

	complexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Complex HTML Page</title>
</head>
<body>
    <div class="container">
        <header>
            <nav aria-label="Main navigation">
                <ul class="nav-list">
                    <li><a href="/" aria-current="page">Home</a></li>
                    <li><a href="/products">Products</a></li>
                    <li><a href="/services">Services</a></li>
                </ul>
            </nav>
        </header>
        <main>
            <section id="features">
                <h2>Our Features</h2>
                <div class="feature-grid">
                    <div class="feature" data-feature-id="1">
                        <h3>Fast Performance</h3>
                        <p>Optimized for speed</p>
                    </div>
                    <div class="feature" data-feature-id="2">
                        <h3>Reliable</h3>
                        <p>99.9% uptime guaranteed</p>
                    </div>
                    <div class="feature" data-feature-id="3">
                        <h3>Secure</h3>
                        <p>Bank-level encryption</p>
                    </div>
                </div>
            </section>
            <section id="contact">
                <h2>Contact Us</h2>
                <form action="/submit" method="post">
                    <div class="form-group">
                        <label for="name">Name:</label>
                        <input type="text" id="name" name="name" required>
                    </div>
                </form>
            </section>
        </main>
    </div>
</body>
</html>`
)

// =============================================================================
// happydom benchmarks
// =============================================================================

func BenchmarkHappydom_Parse_Simple(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		doc, err := Parse(simpleHTML)
		if err != nil {
			b.Fatal(err)
		}
		_ = doc
	}
}

func BenchmarkHappydom_Parse_Complex(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		doc, err := Parse(complexHTML)
		if err != nil {
			b.Fatal(err)
		}
		_ = doc
	}
}

func BenchmarkHappydom_Query_Simple(b *testing.B) {
	doc, err := Parse(complexHTML)
	if err != nil {
		b.Fatal(err)
	}
	root := doc.DocumentElement()
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		results, err := QuerySelectorAll(root, "div.feature")
		if err != nil {
			b.Fatal(err)
		}
		_ = results
	}
}

func BenchmarkHappydom_Query_Complex(b *testing.B) {
	doc, err := Parse(complexHTML)
	if err != nil {
		b.Fatal(err)
	}
	root := doc.DocumentElement()
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		results, err := QuerySelectorAll(root, "section > h2 + div.feature-grid div[data-feature-id]")
		if err != nil {
			b.Fatal(err)
		}
		_ = results
	}
}

// =============================================================================
// golang.org/x/net/html benchmarks
// =============================================================================

func BenchmarkNetHTML_Parse_Simple(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		doc, err := html.Parse(strings.NewReader(simpleHTML))
		if err != nil {
			b.Fatal(err)
		}
		_ = doc
	}
}

func BenchmarkNetHTML_Parse_Complex(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		doc, err := html.Parse(strings.NewReader(complexHTML))
		if err != nil {
			b.Fatal(err)
		}
		_ = doc
	}
}

// =============================================================================
// goquery benchmarks
// =============================================================================

func BenchmarkGoquery_Parse_Simple(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(simpleHTML))
		if err != nil {
			b.Fatal(err)
		}
		_ = doc
	}
}

func BenchmarkGoquery_Parse_Complex(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(complexHTML))
		if err != nil {
			b.Fatal(err)
		}
		_ = doc
	}
}

func BenchmarkGoquery_Query_Simple(b *testing.B) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(complexHTML))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		selection := doc.Find("div.feature")
		_ = selection
	}
}

func BenchmarkGoquery_Query_Complex(b *testing.B) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(complexHTML))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		selection := doc.Find("section > h2 + div.feature-grid div[data-feature-id]")
		_ = selection
	}
}

// =============================================================================
// Parallel benchmarks
// =============================================================================

func BenchmarkHappydom_Parse_Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			doc, err := Parse(complexHTML)
			if err != nil {
				b.Fatal(err)
			}
			_ = doc
		}
	})
}

func BenchmarkNetHTML_Parse_Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			doc, err := html.Parse(strings.NewReader(complexHTML))
			if err != nil {
				b.Fatal(err)
			}
			_ = doc
		}
	})
}

func BenchmarkGoquery_Parse_Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(complexHTML))
			if err != nil {
				b.Fatal(err)
			}
			_ = doc
		}
	})
}
