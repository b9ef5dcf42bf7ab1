package main

// indexPage is the upload form. Scan results come back as JSON and the page
// renders them client-side; the copy buttons are plain clipboard
// pass-through.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>ShowTails card scanner</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
#progress { color: #555; min-height: 1.2em; }
#report { background: #f6f6f6; padding: 1rem; }
textarea { width: 100%; height: 8rem; font-family: monospace; }
button { margin: 0.3rem 0.3rem 0.3rem 0; }
</style>
</head>
<body>
<h1>Pedigree card scanner</h1>
<form id="form">
  <input type="file" id="image" name="image" accept="image/*">
  <button type="submit">Scan card</button>
</form>
<p id="progress"></p>
<div id="result" hidden>
  <h2>Report</h2>
  <div id="report"></div>
  <button id="copyReport">Copy report</button>
  <h2>Table</h2>
  <textarea id="tsv" readonly></textarea>
  <button id="copyTsv">Copy table</button>
</div>
<script>
const progress = document.getElementById("progress");
document.getElementById("form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const file = document.getElementById("image").files[0];
  if (!file) { progress.textContent = "Choose a card image first."; return; }
  progress.textContent = "Recognizing…";
  const body = new FormData();
  body.append("image", file);
  try {
    const res = await fetch("/scan", { method: "POST", body });
    const data = await res.json();
    if (!res.ok) { progress.textContent = data.error || "Scan failed."; return; }
    progress.textContent = "";
    document.getElementById("report").innerHTML = data.reportHtml;
    document.getElementById("tsv").value = data.tsv;
    document.getElementById("result").hidden = false;
  } catch (err) {
    progress.textContent = "Scan failed: " + err;
  }
});
document.getElementById("copyReport").addEventListener("click", () =>
  navigator.clipboard.writeText(document.getElementById("report").innerText));
document.getElementById("copyTsv").addEventListener("click", () =>
  navigator.clipboard.writeText(document.getElementById("tsv").value));
</script>
</body>
</html>
`
